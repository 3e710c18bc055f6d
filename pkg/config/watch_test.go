package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "watch:\n  volumes: [vol0]\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { changes <- c })
	}()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	// an invalid file is skipped
	writeFile(t, path, "client:\n  timeout: -1s\n")
	select {
	case c := <-changes:
		t.Fatalf("invalid config was delivered: %+v", c.Client)
	case <-time.After(600 * time.Millisecond):
	}

	writeFile(t, path, "watch:\n  volumes: [vol1, vol2]\n")
	select {
	case c := <-changes:
		if len(c.Watch.Volumes) != 2 || c.Watch.Volumes[0] != "vol1" {
			t.Errorf("Volumes = %v, want [vol1 vol2]", c.Watch.Volumes)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config change not delivered")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"), func(*Config) {})
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
