package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phindle/termframe/internal/screen"
	"github.com/phindle/termframe/internal/validate"
)

func (a *App) renderCmd() *cobra.Command {
	var (
		vars  []string
		check bool
		crlf  bool
	)

	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a screen template with variables applied",
		Long: `Render a named screen template, substituting {{name}} placeholders.

Values are padded to the width of the placeholder they replace, so a
template drawn at a fixed width keeps its geometry. A value wider than
its slot is an error rather than a sheared border.`,
		Example: `  termframe render welcome.ans --var node=1 --var max_nodes=4 --var caller_count=0 --var handle=sysop
  termframe render main_menu.ans --var handle=sysop --var unread=3 --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			values := make(map[string]string, len(vars))
			for _, v := range vars {
				name, value, ok := strings.Cut(v, "=")
				if !ok {
					return fmt.Errorf("invalid --var %q, want name=value", v)
				}
				values[name] = value
			}

			renderer := a.newRenderer()
			out, err := renderer.Render(args[0], values)
			if err != nil {
				return err
			}

			if check {
				results := validate.ValidateAll(out)
				for _, res := range results {
					if !res.Valid {
						printResults(os.Stderr, args[0], results)
						return fmt.Errorf("rendered output failed validation")
					}
				}
			}

			if crlf {
				fmt.Print(out)
				return nil
			}
			fmt.Println(strings.ReplaceAll(out, "\r\n", "\n"))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Template variable as name=value (repeatable)")
	cmd.Flags().BoolVar(&check, "check", false, "Validate the rendered output before printing")
	cmd.Flags().BoolVar(&crlf, "crlf", false, "Emit transport line endings (\\r\\n) verbatim")
	return cmd
}

// newRenderer builds a screen.Renderer from the loaded config.
func (a *App) newRenderer() *screen.Renderer {
	policy, err := screen.ParseMissingPolicy(a.config.Template.MissingVariable)
	if err != nil {
		policy = screen.MissingError // config validation already warned
	}
	return screen.NewRenderer(a.config.TemplateDir(), policy)
}

func (a *App) templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available screen templates",
		RunE: func(_ *cobra.Command, _ []string) error {
			names, err := a.newRenderer().Names()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
}
