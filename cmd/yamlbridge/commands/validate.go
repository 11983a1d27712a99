package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/yamlbridge/convert"
	"github.com/erraggy/yamlbridge/internal/cliutil"
)

// ErrInvalidDocument is returned by HandleValidate when the document is malformed.
var ErrInvalidDocument = errors.New("document is not well formed")

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Format  string
	Quiet   bool
	Verbose bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Format, "format", FormatAuto, "document format: auto, yaml, or json")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: report only through the exit code")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: report only through the exit code")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log parser details to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: yamlbridge validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Check that a document is well-formed YAML or JSON without converting it.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nFormat detection (auto):\n")
		Writef(fs.Output(), "  1. the file extension (.json, .yaml, .yml)\n")
		Writef(fs.Output(), "  2. the first non-blank character ({ or [ means JSON)\n")
		Writef(fs.Output(), "  3. otherwise YAML\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Document is well formed\n")
		Writef(fs.Output(), "  1    Document is malformed or could not be read\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}
	if err := validateFormatFlag(flags.Format); err != nil {
		return err
	}

	path := fs.Arg(0)
	text, err := readInput(path)
	if err != nil {
		return err
	}

	format := resolveFormat(flags.Format, path, text)
	logger := convert.WithLogger(newLogger(flags.Verbose))
	if format == convert.FormatJSON {
		_, err = convert.ParseJSON(text, logger)
	} else {
		_, err = convert.ParseYAML(text, logger)
	}

	if err != nil {
		if !flags.Quiet {
			Writef(Stdout, "%s: invalid %s: %v\n", cliutil.DisplayPath(path), format, err)
		}
		return ErrInvalidDocument
	}
	if !flags.Quiet {
		Writef(Stdout, "%s: valid %s\n", cliutil.DisplayPath(path), format)
	}
	return nil
}

func validateFormatFlag(name string) error {
	if name == FormatAuto || convert.ParseFormat(name) != convert.FormatUnknown {
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", name, FormatAuto, FormatYAML, FormatJSON)
}

// resolveFormat picks the explicit format, else the extension, else content sniffing.
func resolveFormat(name, path, text string) convert.Format {
	if f := convert.ParseFormat(name); f != convert.FormatUnknown {
		return f
	}
	if f := convert.DetectFormatFromPath(path); f != convert.FormatUnknown {
		return f
	}
	if f := convert.DetectFormat([]byte(text)); f != convert.FormatUnknown {
		return f
	}
	return convert.FormatYAML
}
