// Package scene describes SVG drawings declaratively in TOML and builds them
// into [svg.Document] values.
//
// # Format
//
// A scene file sets the canvas header at the top level and lists elements as
// an array of tables. Groups nest their members under "children":
//
//	width = 12
//	height = 12
//	title = "Demo"
//
//	[view_box]
//	x = 0
//	y = 0
//	width = 1200
//	height = 400
//
//	[[element]]
//	kind = "circle"
//	x = 600
//	y = 200
//	r = 100
//	attrs = "fill=red stroke=blue"
//
//	[[element]]
//	kind = "group"
//	id = "shifted"
//	transform = [{ op = "translate", args = [100, 0] }]
//
//	  [[element.children]]
//	  kind = "rect"
//	  x = 0
//	  y = 0
//	  width = 200
//	  height = 200
//
// Supported kinds are circle, ellipse, line, rect (rounded when rx or ry is
// set), polyline, polygon, text and group. Transform ops are translate,
// rotate, scale, skewX, skewY and matrix.
//
// # Validation
//
// [Decode] rejects unknown keys, and [Scene.Validate] checks kinds, transform
// arity, point pairs and attribute strings before anything is built. Every
// failure carries [errs.ErrCodeInvalidScene] and names the offending element
// path, e.g. "element[2].children[0]". Groups are built with
// [svg.Document.WithGroup], so a valid scene always produces balanced output.
package scene
