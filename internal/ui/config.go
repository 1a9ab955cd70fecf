package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phindle/termframe/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			printConfig(a.config)
			return nil
		},
	}
	cmd.AddCommand(a.configInitCmd())
	return cmd
}

func (a *App) configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current values",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}
			if err := a.config.Write(path); err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

func printConfig(cfg *config.Config) {
	fmt.Printf("Config file: %s\n\n", config.DefaultConfigPath())

	fmt.Println(formatHeader("Render"))
	fmt.Printf("  width_ceiling: %d (interior %d)\n", cfg.Render.WidthCeiling, cfg.DefaultInteriorWidth())
	fmt.Printf("  border_style:  %s\n", cfg.Render.BorderStyle)
	fmt.Printf("  ellipsis:      %v\n", cfg.Render.Ellipsis)

	fmt.Println(formatHeader("Template"))
	dir := cfg.Template.Dir
	if dir == "" {
		dir = formatMuted("(bundled only)")
	}
	fmt.Printf("  dir:              %s\n", dir)
	fmt.Printf("  missing_variable: %s\n", cfg.Template.MissingVariable)

	fmt.Println(formatHeader("UI"))
	fmt.Printf("  color: %v\n", cfg.UI.Color)
}
