// Package pkg provides the libraries behind svgdoc.
//
// # Overview
//
// svgdoc builds SVG documents programmatically: callers append shapes,
// transforms and nested groups to a document and then serialize it to one
// well-formed SVG text. The pkg directory is organized into:
//
//  1. [svg] - The document builder (attributes, transforms, shapes, groups)
//  2. [scene] - Declarative TOML drawings built into documents
//  3. [sink] - Output destinations (files, stdout, minification)
//  4. [errors] - Coded errors shared by all packages
//  5. [observability] - Render hooks for optional instrumentation
//
// # Architecture
//
// The typical data flow through svgdoc:
//
//	Scene file (TOML)          Go code
//	         ↓                    ↓
//	    [scene] package    →  [svg] Document (Building)
//	                              ↓
//	                     Finalize / Bytes (Finalized)
//	                              ↓
//	                     [sink] file, stdout, minifier
//
// # Quick Start
//
// Build a document in code:
//
//	import "github.com/matzehuels/svgdoc/pkg/svg"
//
//	doc := svg.New(12, 12, svg.WithViewBox(0, 0, 1200, 400))
//	doc.GroupTranslate(100, 100)
//	doc.Circle(0, 0, 50, "fill=red")
//	doc.GroupEnd()
//	if err := doc.Finalize(os.Stdout); err != nil {
//	    return err
//	}
//
// Or render a scene file:
//
//	s, err := scene.Load("drawing.toml")
//	if err != nil {
//	    return err
//	}
//	doc, err := s.Build()
//
// # Versioning
//
// The [buildinfo] package carries the version stamped at build time.
package pkg
