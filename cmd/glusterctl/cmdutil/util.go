// Package cmdutil holds state and helpers shared by glusterctl commands.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/marmos91/glusterrpc/internal/cli/output"
	"github.com/marmos91/glusterrpc/internal/cli/prompt"
	"github.com/marmos91/glusterrpc/internal/logger"
	"github.com/marmos91/glusterrpc/internal/protocol/dict"
	"github.com/marmos91/glusterrpc/internal/telemetry"
	"github.com/marmos91/glusterrpc/pkg/client"
	"github.com/marmos91/glusterrpc/pkg/config"
	"github.com/marmos91/glusterrpc/pkg/metrics"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	ConfigFile     string
	Output         string
	NoColor        bool
	Verbose        bool
	GlusterdSocket string
	QuotadSocket   string
	Timeout        time.Duration
}

var (
	cfg               *config.Config
	telemetryShutdown func(context.Context) error
)

// Setup loads the configuration, applies flag overrides and initializes
// logging and tracing. It runs before every command.
func Setup(ctx context.Context, version string) error {
	loaded, err := config.Load(Flags.ConfigFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(loaded)
	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	cfg = loaded

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if Flags.NoColor {
		logger.SetColor(false)
	}

	telemetryShutdown, err = telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "glusterctl",
		ServiceVersion: version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	return nil
}

// Teardown flushes pending spans.
func Teardown(ctx context.Context) {
	if telemetryShutdown == nil {
		return
	}
	if err := telemetryShutdown(ctx); err != nil {
		logger.Warn("telemetry shutdown error", logger.Err(err))
	}
	telemetryShutdown = nil
}

func applyFlagOverrides(c *config.Config) {
	if Flags.Verbose {
		c.Logging.Level = "DEBUG"
	}
	if Flags.GlusterdSocket != "" {
		c.Client.GlusterdSocket = Flags.GlusterdSocket
	}
	if Flags.QuotadSocket != "" {
		c.Client.QuotadSocket = Flags.QuotadSocket
	}
	if Flags.Timeout > 0 {
		c.Client.Timeout = Flags.Timeout
	}
}

// Config returns the configuration loaded by Setup.
func Config() *config.Config {
	if cfg == nil {
		return config.GetDefaultConfig()
	}
	return cfg
}

// ConfigPath returns the config file in use, or "" when running on
// defaults and environment only.
func ConfigPath() string {
	if Flags.ConfigFile != "" {
		return Flags.ConfigFile
	}
	if config.DefaultConfigExists() {
		return config.GetDefaultConfigPath()
	}
	return ""
}

// NewClient returns a client built from the loaded configuration.
func NewClient(m metrics.RPCMetrics) (*client.Client, error) {
	return client.New(Config().Client.ClientConfig(), client.WithMetrics(m))
}

// GetOutputFormatParsed returns the parsed --output format.
func GetOutputFormatParsed() (output.Format, error) {
	return output.ParseFormat(Flags.Output)
}

// PrintOutput prints data in the selected format. Tables print emptyMsg
// instead when isEmpty is set.
func PrintOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return output.PrintTable(w, tableRenderer)
	}
}

// PrintResource prints a single result, as key/value pairs for tables.
func PrintResource(w io.Writer, data any, pairs [][2]string) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		return output.KeyValueTable(w, pairs)
	}
}

// PrintSuccess prints msg in table mode only.
func PrintSuccess(msg string) {
	format, err := GetOutputFormatParsed()
	if err != nil || format != output.FormatTable {
		return
	}
	output.NewPrinter(os.Stdout, format, !Flags.NoColor).Success(msg)
}

// RunWithConfirmation asks before running fn unless force is set.
func RunWithConfirmation(question string, force bool, fn func() error) error {
	confirmed, err := prompt.ConfirmWithForce(question, force)
	if err != nil {
		return HandleAbort(err)
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}
	return fn()
}

// HandleAbort turns a Ctrl+C at a prompt into a clean exit.
func HandleAbort(err error) error {
	if prompt.IsAborted(err) {
		fmt.Println("\nAborted.")
		return nil
	}
	return err
}

// ParseKeyValues turns "key=value" pairs into a dictionary of
// NUL-terminated strings, the form glusterd expects for options.
func ParseKeyValues(pairs []string) (dict.Dict, error) {
	d := dict.Dict{}
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q: expected key=value", kv)
		}
		if _, dup := d[key]; dup {
			return nil, fmt.Errorf("option %q given more than once", key)
		}
		d.SetString(key, value)
	}
	return d, nil
}

// BoolToYesNo converts a boolean to "yes" or "no".
func BoolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// EmptyOr returns value, or fallback when value is empty.
func EmptyOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// IsTimeout reports whether err came from an expired call deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
