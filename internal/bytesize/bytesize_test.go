package bytesize

import (
	"testing"
)

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ByteSize
		wantErr bool
	}{
		{"plain zero", "0", 0, false},
		{"plain bytes", "65536", 65536, false},
		{"bytes suffix", "1024B", 1024, false},

		{"Ki", "512Ki", 512 * 1024, false},
		{"KiB", "512KiB", 512 * 1024, false},
		{"Mi", "1Mi", 1024 * 1024, false},
		{"Gi", "2Gi", 2 * 1024 * 1024 * 1024, false},
		{"Ti", "1Ti", 1 << 40, false},
		{"Pi", "3Pi", 3 << 50, false},

		{"K", "100K", 100 * 1000, false},
		{"MB", "4MB", 4 * 1000 * 1000, false},
		{"TB", "1TB", 1000 * 1000 * 1000 * 1000, false},

		{"case insensitive", "1mI", 1024 * 1024, false},
		{"surrounding space", "  1 Mi  ", 1024 * 1024, false},
		{"fraction", "1.5Mi", ByteSize(1.5 * 1024 * 1024), false},

		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"unknown unit", "1Xi", 0, true},
		{"negative", "-1Mi", 0, true},
		{"no number", "Gi", 0, true},
		{"overflow", "20000000Pi", 0, true},
		{"fraction overflow", "99999999.5Pi", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseByteSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseByteSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseByteSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestByteSize_TextRoundTrip(t *testing.T) {
	for _, size := range []ByteSize{0, 1000, KiB, 1536 * KiB, MiB, 3 * GiB, PiB} {
		text, err := size.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", size, err)
		}
		var got ByteSize
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != size {
			t.Errorf("round trip of %d via %q = %d", size, text, got)
		}
	}
}

func TestByteSize_Exact(t *testing.T) {
	tests := []struct {
		input ByteSize
		want  string
	}{
		{0, "0"},
		{1000, "1000"},
		{MiB, "1Mi"},
		{1536 * KiB, "1536Ki"},
		{2 * TiB, "2Ti"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.input.Exact(); got != tt.want {
				t.Errorf("ByteSize(%d).Exact() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestByteSize_String(t *testing.T) {
	tests := []struct {
		name  string
		input ByteSize
		want  string
	}{
		{"bytes", 512, "512B"},
		{"kibibytes", 2 * KiB, "2.00KiB"},
		{"mebibytes", 100 * MiB, "100.00MiB"},
		{"fractional gibibytes", ByteSize(1.5 * float64(GiB)), "1.50GiB"},
		{"pebibytes", 2 * PiB, "2.00PiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.want {
				t.Errorf("ByteSize(%d).String() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestByteSize_Uint32(t *testing.T) {
	if v, ok := MiB.Uint32(); !ok || v != 1<<20 {
		t.Errorf("MiB.Uint32() = %d, %v", v, ok)
	}
	if _, ok := (4 * GiB).Uint32(); ok {
		t.Error("4GiB should not fit in uint32")
	}
}
