// Package sink provides output destinations for finalized documents.
//
// [Create] opens a file, or standard output for "-" and "", and [Minify]
// wraps any writer with the tdewolff SVG minifier. Both return an
// [io.WriteCloser]; the caller must Close to flush and release the file.
//
//	out, err := sink.Create(path)
//	if err != nil {
//	    return err
//	}
//	w := sink.Minify(out)
//	if err := doc.Finalize(w); err != nil {
//	    return err
//	}
//	return w.Close()
package sink

import (
	"io"
	"os"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

// MediaType is the media type documents are minified as.
const MediaType = "image/svg+xml"

// Stdout is the path that selects standard output.
const Stdout = "-"

// Create opens path for writing, truncating any existing file.
// An empty path or "-" selects standard output, which Close leaves open.
func Create(path string) (io.WriteCloser, error) {
	if path == "" || path == Stdout {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// Minify returns a writer that minifies the SVG written to it and forwards
// the result to w. Close flushes the minifier and then closes w.
//
// The minifier works on the whole stream, so nothing reaches w until Close.
func Minify(w io.WriteCloser) io.WriteCloser {
	m := minify.New()
	m.Add(MediaType, &svg.Minifier{})
	return &minifyWriter{mw: m.Writer(MediaType, w), dst: w}
}

type minifyWriter struct {
	mw  io.WriteCloser
	dst io.Closer
}

func (w *minifyWriter) Write(p []byte) (int, error) { return w.mw.Write(p) }

func (w *minifyWriter) Close() error {
	err := w.mw.Close()
	if cerr := w.dst.Close(); err == nil {
		err = cerr
	}
	return err
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
