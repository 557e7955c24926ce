// Package cli assembles the refinery command tree and wires the
// refinement components together.
package cli

import (
	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies
type App struct {
	rootCmd *cobra.Command

	// Runtime flags
	configPath string
	noColor    bool
	verbose    bool

	// Version information
	version string
	commit  string
	date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "refinery",
		Short: "Interactive specification refinement",
		Long: `Refinery walks a draft specification through iterative human review:
it proposes handling for edge cases, contradictions, and gaps, collects
decisions, and produces a finalized specification ready for execution
planning.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Config file path (default ~/.refinery/config.yaml)")
	a.rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false,
		"Disable styled output")
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Echo session activity to stderr")

	a.rootCmd.AddCommand(NewRunCmd(a))
	a.rootCmd.AddCommand(NewResumeCmd(a))
	a.rootCmd.AddCommand(NewSessionsCmd(a))
	a.rootCmd.AddCommand(NewExportCmd(a))
	a.rootCmd.AddCommand(NewVersionCmd(a))
}
