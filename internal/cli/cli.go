// Package cli implements the inkctl command-line interface.
//
// inkctl drives the geometry core from the shell: it generates shapes,
// simplifies, smooths and outlines paths, combines regions, replays
// recorded pointer samples through the stroke synthesizer and lists the
// built-in stroke profiles. Every geometry command can also write a PNG
// preview.
//
// # Files
//
// Paths are read from TOML files:
//
//	fill_rule = "evenodd"
//
//	[[subpath]]
//	closed = true
//	points = [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0]]
//
// Results are printed in compact path notation ("M 0 0 L 10 0 Z") or,
// with --format toml, in the same file layout.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The CLI
// logger is passed through context.Context and also installed as the
// library logger, so debug output from synth, pathedit and boolean shows up
// on stderr.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
)

const appName = "inkctl"

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version. main
// calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI that logs to w at the given level.
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
		Short:        "inkctl runs the ink vector geometry core from the command line",
		Long:         `inkctl generates shapes, edits and combines paths, and replays pointer samples through the stroke synthesizer.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ink.SetLogger(slog.New(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	root.AddCommand(c.shapeCommand())
	root.AddCommand(c.simplifyCommand())
	root.AddCommand(c.smoothCommand())
	root.AddCommand(c.curveCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.booleanCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.profilesCommand())
	root.AddCommand(c.demoCommand())

	return root
}
