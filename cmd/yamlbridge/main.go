package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/yamlbridge"
	"github.com/erraggy/yamlbridge/cmd/yamlbridge/commands"
)

// knownCommands is the list of user-facing command names for suggestions.
var knownCommands = []string{"yaml2json", "json2yaml", "validate", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	var err error

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("%s\n", yamlbridge.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "yaml2json":
		err = commands.HandleYAML2JSON(os.Args[2:])
	case "json2yaml":
		err = commands.HandleJSON2YAML(os.Args[2:])
	case "validate":
		err = commands.HandleValidate(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		// validate has already reported the parser message.
		if !errors.Is(err, commands.ErrInvalidDocument) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`yamlbridge - YAML and JSON conversion

Usage:
  yamlbridge <command> [options]

Commands:
  yaml2json   Convert a YAML document to JSON
  json2yaml   Convert a JSON document to YAML
  validate    Check that a document is well-formed YAML or JSON
  mcp         Serve the conversion tools over MCP (stdio)
  version     Show version information
  help        Show this help message

Examples:
  yamlbridge yaml2json config.yaml
  yamlbridge yaml2json --pretty -o config.json config.yaml
  yamlbridge json2yaml --flow data.json
  cat doc.yaml | yamlbridge validate -

Run 'yamlbridge <command> --help' for more information on a command.`)
}
