package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/yamlbridge/convert"
	"github.com/erraggy/yamlbridge/internal/cliutil"
)

// JSON2YAMLFlags contains flags for the json2yaml command
type JSON2YAMLFlags struct {
	Output  string
	Flow    bool
	Indent  int
	Verbose bool
}

// SetupJSON2YAMLFlags creates and configures a FlagSet for the json2yaml command.
func SetupJSON2YAMLFlags() (*flag.FlagSet, *JSON2YAMLFlags) {
	fs := flag.NewFlagSet("json2yaml", flag.ContinueOnError)
	flags := &JSON2YAMLFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Flow, "flow", false, "emit flow style ({a: 1, b: [x, y]}) instead of block style")
	fs.IntVar(&flags.Indent, "indent", convert.DefaultYAMLIndent, "spaces per block indentation level (2-9)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log conversion details to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: yamlbridge json2yaml [flags] <file|->\n\n")
		Writef(fs.Output(), "Convert a JSON document to YAML. Strings that would read back as another type are quoted.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  yamlbridge json2yaml package.json\n")
		Writef(fs.Output(), "  yamlbridge json2yaml --flow -o inline.yaml data.json\n")
		Writef(fs.Output(), "  curl -s https://example.com/data.json | yamlbridge json2yaml -\n")
	}

	return fs, flags
}

// HandleJSON2YAML executes the json2yaml command
func HandleJSON2YAML(args []string) error {
	fs, flags := SetupJSON2YAMLFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("json2yaml command requires exactly one file path or '-' for stdin")
	}

	style := convert.StyleBlock
	if flags.Flow {
		style = convert.StyleFlow
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
	out, err := convert.JSONToYAML(text, style,
		convert.WithYAMLIndent(flags.Indent),
		convert.WithLogger(newLogger(flags.Verbose)),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", cliutil.DisplayPath(path), err)
	}
	return cliutil.WriteOutput(flags.Output, out, Stdout)
}
