package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/yamlbridge/convert"
	"github.com/erraggy/yamlbridge/internal/cliutil"
)

// YAML2JSONFlags contains flags for the yaml2json command
type YAML2JSONFlags struct {
	Output  string
	Pretty  bool
	Indent  int
	Verbose bool
}

// SetupYAML2JSONFlags creates and configures a FlagSet for the yaml2json command.
func SetupYAML2JSONFlags() (*flag.FlagSet, *YAML2JSONFlags) {
	fs := flag.NewFlagSet("yaml2json", flag.ContinueOnError)
	flags := &YAML2JSONFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Pretty, "pretty", false, "pretty-print the JSON output")
	fs.IntVar(&flags.Indent, "indent", 2, "spaces per level when --pretty is set (1-8)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log conversion details to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: yamlbridge yaml2json [flags] <file|->\n\n")
		Writef(fs.Output(), "Convert a YAML document to JSON. Key order and number text are preserved.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  yamlbridge yaml2json config.yaml\n")
		Writef(fs.Output(), "  yamlbridge yaml2json --pretty -o config.json config.yaml\n")
		Writef(fs.Output(), "  cat config.yaml | yamlbridge yaml2json - | jq .\n")
	}

	return fs, flags
}

// HandleYAML2JSON executes the yaml2json command
func HandleYAML2JSON(args []string) error {
	fs, flags := SetupYAML2JSONFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("yaml2json command requires exactly one file path or '-' for stdin")
	}

	opts := []convert.Option{convert.WithLogger(newLogger(flags.Verbose))}
	if flags.Pretty {
		if flags.Indent < 1 || flags.Indent > 8 {
			return fmt.Errorf("invalid indent %d; must be between 1 and 8", flags.Indent)
		}
		opts = append(opts, convert.WithJSONIndent(strings.Repeat(" ", flags.Indent)))
	}

	path := fs.Arg(0)
	if flags.Output != "" && flags.Output != cliutil.StdinPath {
		if _, err := cliutil.CheckOutputPath(flags.Output, path); err != nil {
			return err
		}
	}
	text, err := readInput(path)
	if err != nil {
		return err
	}
	out, err := convert.YAMLToJSON(text, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", cliutil.DisplayPath(path), err)
	}
	return cliutil.WriteOutput(flags.Output, out, Stdout)
}

