package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgdoc/pkg/scene"
	"github.com/matzehuels/svgdoc/pkg/sink"
)

// demoCommand creates the demo command, which writes the built-in drawing
// either as SVG or as the scene file it is built from.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		output  string
		asScene bool
		minify  bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the built-in demo drawing",
		Long: `Write the built-in demo drawing to stdout or a file.

With --scene the TOML scene is written instead, as a starting point for
your own drawings.`,
		Example: `  svgdoc demo -o demo.svg
  svgdoc demo --scene -o demo.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scene.Demo()

			if asScene {
				if err := writeScene(s, output); err != nil {
					return err
				}
			} else {
				doc, err := s.Build()
				if err != nil {
					return err
				}
				if _, err := writeDocument(doc, output, minify); err != nil {
					return err
				}
			}

			if output != sink.Stdout {
				w := cmd.ErrOrStderr()
				if asScene {
					printSuccess(w, "Wrote demo scene")
				} else {
					printSuccess(w, "Wrote demo drawing")
				}
				printFile(w, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", sink.Stdout, "output file (\"-\" for stdout)")
	cmd.Flags().BoolVar(&asScene, "scene", false, "write the scene file ("+sceneExt+") instead of SVG")
	cmd.Flags().BoolVar(&minify, "minify", false, "minify the SVG output")

	return cmd
}

func writeScene(s *scene.Scene, path string) error {
	out, err := sink.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
