package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgdoc/pkg/observability"
	"github.com/matzehuels/svgdoc/pkg/scene"
	"github.com/matzehuels/svgdoc/pkg/sink"
)

// renderOpts holds options for the render command.
type renderOpts struct {
	output     string
	minify     bool
	width      int
	height     int
	unit       string
	standalone bool
	title      string
	desc       string
}

// renderCommand creates the render command for turning scene files into SVG.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <scene.toml|->",
		Short: "Render a scene file to SVG",
		Long: `Render a TOML scene file to an SVG document.

Use "-" to read the scene from standard input. The output defaults to the
input path with an .svg extension, or standard output when reading stdin.
Header flags override the corresponding scene fields.`,
		Example: `  svgdoc render drawing.toml
  svgdoc render drawing.toml -o out.svg --minify
  cat drawing.toml | svgdoc render - --title "Drawing" > out.svg`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScene,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			opts.apply(cmd, s)
			if opts.output == "" {
				opts.output = defaultOutput(args[0])
			}
			return c.runRender(cmd.Context(), s, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (\"-\" for stdout)")
	cmd.Flags().BoolVar(&opts.minify, "minify", false, "minify the SVG output")
	cmd.Flags().IntVar(&opts.width, "width", 0, "override document width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "override document height")
	cmd.Flags().StringVar(&opts.unit, "unit", "", "override length unit (e.g. cm, mm, px)")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "declare the document standalone")
	cmd.Flags().StringVar(&opts.title, "title", "", "override document title")
	cmd.Flags().StringVar(&opts.desc, "desc", "", "override document description")
	_ = cmd.RegisterFlagCompletionFunc("unit", completeUnit)

	return cmd
}

// apply copies explicitly set header flags onto s.
func (o renderOpts) apply(cmd *cobra.Command, s *scene.Scene) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		s.Width = o.width
	}
	if flags.Changed("height") {
		s.Height = o.height
	}
	if flags.Changed("unit") {
		s.Unit = o.unit
	}
	if flags.Changed("standalone") {
		s.Standalone = o.standalone
	}
	if flags.Changed("title") {
		s.Title = o.title
	}
	if flags.Changed("desc") {
		s.Desc = o.desc
	}
}

func (c *CLI) runRender(ctx context.Context, s *scene.Scene, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	hooks := observability.Render()

	start := time.Now()
	doc, err := s.Build()
	hooks.OnBuild(ctx, s.Stats().Elements, time.Since(start), err)
	if err != nil {
		return err
	}
	logger.Debugf("Canvas %dx%d%s", s.Width, s.Height, doc.Head().Unit)

	start = time.Now()
	n, err := writeDocument(doc, opts.output, opts.minify)
	hooks.OnWrite(ctx, opts.output, n, time.Since(start), err)
	if err != nil {
		return err
	}

	if opts.output == sink.Stdout {
		prog.done("Rendered to stdout")
		return nil
	}
	prog.done("Rendered " + opts.output)
	return nil
}

// finalizer is satisfied by *svg.Document.
type finalizer interface {
	Finalize(w io.Writer) error
}

// writeDocument finalizes doc into path, optionally through the minifier,
// and returns the number of bytes that reached the sink.
// The sink is always closed; the first error wins.
func writeDocument(doc finalizer, path string, minify bool) (int, error) {
	out, err := sink.Create(path)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{WriteCloser: out}
	var w io.WriteCloser = cw
	if minify {
		w = sink.Minify(cw)
	}
	if err := doc.Finalize(w); err != nil {
		w.Close()
		return cw.n, err
	}
	err = w.Close()
	return cw.n, err
}

type countingWriter struct {
	io.WriteCloser
	n int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.WriteCloser.Write(p)
	w.n += n
	return n, err
}

// loadScene reads a scene from path, or from stdin when path is "-".
func loadScene(ctx context.Context, path string) (*scene.Scene, error) {
	var (
		s   *scene.Scene
		err error
	)
	if path == sink.Stdout {
		s, err = scene.Decode(os.Stdin)
	} else {
		s, err = scene.Load(path)
	}
	elements := 0
	if s != nil {
		elements = s.Stats().Elements
	}
	observability.Render().OnSceneLoad(ctx, path, elements, err)
	return s, err
}

// defaultOutput derives the output path from the input path.
func defaultOutput(input string) string {
	if input == sink.Stdout {
		return sink.Stdout
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + svgExt
}
