// Package main is the entry point for the ansidump CLI, a small
// debugging tool that parses ANSI-colored text and prints the layout
// runs the library would hand to a renderer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hnimtadd/ansitext"
	"github.com/hnimtadd/ansitext/render/engine"
	"github.com/hnimtadd/ansitext/render/geom"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		cellWidth  float64
		lineHeight float64
		coalesce   bool
	)
	cmd := &cobra.Command{
		Use:   "ansidump [file]",
		Short: "Parse ANSI-colored text and print its layout runs",
		Long: `ansidump reads ANSI-colored text from a file or stdin, lays it out
with monospace metrics and prints one line per run: position, resolved
color, bold flag and the literal text.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				buf []byte
				err error
			)
			if len(args) == 1 {
				buf, err = os.ReadFile(args[0])
			} else {
				buf, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			buf, err = ansitext.Normalize(buf)
			if err != nil {
				return fmt.Errorf("normalize input: %w", err)
			}

			out := cmd.OutOrStdout()
			view := ansitext.NewView(ansitext.Options{
				Metrics:  ansitext.Monospace(cellWidth, lineHeight),
				Coalesce: coalesce,
				Sink: func(r engine.Run) {
					fmt.Fprintf(out, "(%6.1f,%6.1f) #%02X%02X%02X bold=%-5v %q\n",
						r.Pos.X, r.Pos.Y, r.Fg.R, r.Fg.G, r.Fg.B, r.Bold, r.Text)
				},
			})
			end, err := view.RenderText(buf, geom.Point[float64]{})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "final pen: (%.1f,%.1f)\n", end.X, end.Y)
			return nil
		},
	}
	cmd.Flags().Float64Var(&cellWidth, "cell-width", 1, "width of one terminal cell in output units")
	cmd.Flags().Float64Var(&lineHeight, "line-height", 1, "height of one text line in output units")
	cmd.Flags().BoolVar(&coalesce, "coalesce", false, "merge adjacent runs that share a style")
	return cmd
}
