package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phindle/termframe/internal/config"
	"github.com/phindle/termframe/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "termframe",
		Short: "ANSI frame rendering and width diagnostics",
		Long: `Termframe renders bordered terminal screens and checks their integrity.

It measures the true column width of text mixing UTF-8, emoji, East-Asian
wide characters and ANSI color codes, builds frames that stay rectangular
no matter the content, renders screen templates, and validates captured
output against the width it claims.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to termframe-debug.log)")
	a.root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	a.root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !a.config.UI.Color {
			DisableColor()
		}
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.widthCmd())
	a.root.AddCommand(a.frameCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.validateCmd())
	a.root.AddCommand(a.templatesCmd())
	a.root.AddCommand(a.previewCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("termframe %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview templates with live validation",
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.config, a.debug)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
