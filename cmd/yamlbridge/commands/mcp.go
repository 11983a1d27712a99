package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/yamlbridge/internal/mcpserver"
)

// HandleMCP starts the MCP server over stdio and blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: yamlbridge mcp\n\n")
		Writef(fs.Output(), "Serve the yaml_to_json, json_to_yaml and validate tools over MCP on stdin/stdout.\n")
		Writef(fs.Output(), "Settings are read from YAMLBRIDGE_MCP_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
