package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phindle/termframe/internal/frame"
)

func (a *App) frameCmd() *cobra.Command {
	var (
		width    int
		height   int
		style    string
		align    string
		ellipsis bool
	)

	cmd := &cobra.Command{
		Use:   "frame [line...]",
		Short: "Build a bordered frame around content lines",
		Long: `Build a bordered frame whose every row measures the same true width.

Each argument becomes one content line; with no arguments, lines are read
from stdin. Content wider than the interior is truncated on a grapheme
boundary, narrower content is padded per the alignment rule.`,
		Example: `  termframe frame "Hello" "World"
  termframe frame --style=double --align=center "中文字符"
  fortune | termframe frame --width=60`,
		RunE: func(_ *cobra.Command, args []string) error {
			texts := args
			if len(texts) == 0 {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					texts = append(texts, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			}

			spec, err := a.frameSpec(width, height, style, align, ellipsis)
			if err != nil {
				return err
			}

			lines := make([]frame.Line, len(texts))
			for i, t := range texts {
				lines[i] = frame.Line{Text: t}
			}

			out, err := frame.BuildText(spec, lines)
			if err != nil {
				return err
			}
			fmt.Println(strings.ReplaceAll(out, "\r\n", "\n"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Interior width (default from config: ceiling minus borders)")
	cmd.Flags().IntVar(&height, "height", 0, "Exact interior height (0 = fit content)")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Border style: single or double")
	cmd.Flags().StringVar(&align, "align", "left", "Content alignment: left, center or right")
	cmd.Flags().BoolVar(&ellipsis, "ellipsis", true, "Append … when truncating")
	return cmd
}

// frameSpec assembles a frame.Spec from flags, falling back to config.
func (a *App) frameSpec(width, height int, style, align string, ellipsis bool) (frame.Spec, error) {
	if width == 0 {
		width = a.config.DefaultInteriorWidth()
	}
	if style == "" {
		style = a.config.Render.BorderStyle
	}
	st, err := frame.ParseStyle(style)
	if err != nil {
		return frame.Spec{}, err
	}

	var al frame.Alignment
	switch strings.ToLower(align) {
	case "", "left":
		al = frame.AlignLeft
	case "center", "centre":
		al = frame.AlignCenter
	case "right":
		al = frame.AlignRight
	default:
		return frame.Spec{}, fmt.Errorf("unknown alignment %q", align)
	}

	return frame.Spec{
		InteriorWidth:  width,
		InteriorHeight: height,
		Style:          st,
		Align:          al,
		MaxWidth:       a.config.Render.WidthCeiling,
		Ellipsis:       ellipsis,
	}, nil
}
