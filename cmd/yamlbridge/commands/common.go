// Package commands provides CLI command handlers for yamlbridge.
package commands

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/erraggy/yamlbridge/convert"
	"github.com/erraggy/yamlbridge/internal/cliutil"
)

// Format names accepted by --format.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Standard streams, replaced in tests.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// newLogger returns the logger handed to the conversion core. Verbose output
// goes to Stderr through charmbracelet/log; otherwise logging is off.
func newLogger(verbose bool) convert.Logger {
	if !verbose {
		return convert.NopLogger{}
	}
	handler := charmlog.NewWithOptions(Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.DebugLevel,
		Prefix:          "yamlbridge",
	})
	return convert.NewSlogAdapter(slog.New(handler))
}

// readInput reads the single positional argument of a command.
func readInput(path string) (string, error) {
	return cliutil.ReadInput(path, Stdin)
}
