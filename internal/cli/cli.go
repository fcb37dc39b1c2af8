// Package cli implements the driptrace command-line interface.
//
// Three commands expose the engine: show prints the loaded network, mst
// streams the Kruskal trace, and route streams a Dijkstra run with its
// reconstructed path. Data goes to stdout; progress and diagnostics go to
// the stderr logger. All commands accept --network to load a TOML file in
// place of the built-in farm fixture.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "driptrace"

	// version is the semantic version reported by --version.
	version = "0.1.0"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

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
		Short:        "Driptrace replays irrigation-planning decisions step by step",
		Long: `Driptrace runs Kruskal and Dijkstra over a farm irrigation network and
prints every decision the algorithms make: which pipes are checked, kept,
or rejected, and how the cheapest route to each field is discovered.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Register all subcommands
	root.AddCommand(c.showCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.routeCommand())

	return root
}
