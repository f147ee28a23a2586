// Package svg builds SVG documents programmatically.
//
// # Overview
//
// A [Document] holds header metadata (canvas size, view box, title,
// description, standalone flag) and an append-only content stream. Every
// shape or group boundary appended to it is rendered to a markup fragment
// immediately; the document keeps only the text, never the shape values.
// Finalizing concatenates the header, the content stream and the closing
// tag and writes the result through an [io.Writer] in one call.
//
//	doc := svg.New(12, 12)
//	doc.ViewBox(0, 0, 1200, 400)
//	doc.Circle(600, 200, 100, "fill=red stroke=blue stroke-width=10")
//	doc.GroupTranslate(100, 0)
//	doc.Rect(0, 0, 200, 200, "fill=green")
//	doc.GroupEnd()
//	if err := doc.Finalize(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Shapes
//
// The built-in shapes form a closed set: [Circle], [Ellipse], [Line], [Rect],
// [RoundedRect], [PolyLine], [Polygon] and [Text]. Each carries its geometry,
// a free-form [Attributes] map and an optional [Transform]. [Document.Add]
// accepts any [Element], so callers can append their own renderers without
// touching the document.
//
// # Attribute strings
//
// The convenience methods on [Document] take attributes as a single string of
// space-separated key=value tokens. Each token is split on its first '=';
// a token without '=' or with an empty key is rejected. See [ParseAttributes].
//
// # Errors
//
// Builder methods do not return errors. The first failure (a malformed
// attribute token, closing a group that was never opened, mutating a
// finalized document) is recorded and returned by [Document.Err],
// [Document.Bytes] and [Document.Finalize]; calls made after it are ignored.
// A failed write to the output is returned unchanged.
//
// # Escaping
//
// Attribute values and text content are written verbatim. Callers must supply
// text that is already safe for XML.
//
// A Document is not safe for concurrent use.
package svg
