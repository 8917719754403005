// Package cli implements the framegrid command-line interface.
//
// This package provides commands for inspecting part catalogs, validating
// and converting assembly files, deriving bills of materials, running snap
// queries, rendering attachment graphs, browsing assemblies in a terminal
// viewer, and serving the HTTP API. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - parts: List the available part definitions
//   - check: Validate an assembly file by replaying it
//   - bom: Derive the bill of materials for an assembly
//   - snap: Run a one-shot snap query against an assembly
//   - graph: Render the attachment graph as DOT or SVG
//   - view: Browse an assembly layer by layer in the terminal
//   - convert: Translate between JSON and binary assembly formats
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/buildinfo"
	"github.com/framegrid/framegrid/pkg/catalog"
)

// appName is the application name used for directories and display.
const appName = "framegrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Framegrid composes modular frame structures on an integer grid",
		Long:         `Framegrid is a CLI tool for composing modular frame structures (beams, connectors, fasteners) on a 3D integer grid, with placement validation, snap queries, and bill-of-materials derivation.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.partsCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.bomCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadCatalog returns the builtin catalog, or the builtin catalog with a
// TOML part file merged over it when path is non-empty.
func loadCatalog(path string) (*catalog.Set, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	set, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return set, nil
}
