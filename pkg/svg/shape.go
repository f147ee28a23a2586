package svg

import (
	"bytes"
	"fmt"
)

// Element is anything that can render itself to a markup fragment.
// [Document.Add] accepts any Element, including caller-defined ones.
type Element interface {
	Render() string
}

// Kind names a built-in shape variant.
type Kind string

// Built-in shape kinds.
const (
	KindCircle      Kind = "circle"
	KindEllipse     Kind = "ellipse"
	KindLine        Kind = "line"
	KindRect        Kind = "rect"
	KindRoundedRect Kind = "rounded-rect"
	KindPolyLine    Kind = "polyline"
	KindPolygon     Kind = "polygon"
	KindText        Kind = "text"
)

// Kinds lists every built-in shape kind.
var Kinds = []Kind{
	KindCircle, KindEllipse, KindLine, KindRect,
	KindRoundedRect, KindPolyLine, KindPolygon, KindText,
}

// Shape is one of the built-in primitives. The set is closed: only types in
// this package implement it.
type Shape interface {
	Element
	Kind() Kind
	isShape()
}

// Circle is a <circle> centred on (X, Y).
type Circle struct {
	X, Y      int
	R         uint
	Attrs     Attributes
	Transform *Transform
}

// Ellipse is an <ellipse> centred on (X, Y).
type Ellipse struct {
	X, Y      int
	RX, RY    uint
	Attrs     Attributes
	Transform *Transform
}

// Line is a <line> from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 int
	Attrs          Attributes
	Transform      *Transform
}

// Rect is a <rect> with its top-left corner at (X, Y).
type Rect struct {
	X, Y, Width, Height int
	Attrs               Attributes
	Transform           *Transform
}

// RoundedRect is a <rect> with corner radii RX and RY.
type RoundedRect struct {
	X, Y, Width, Height int
	RX, RY              uint
	Attrs               Attributes
	Transform           *Transform
}

// PolyLine is an open <polyline> through Points.
type PolyLine struct {
	Points    Points
	Attrs     Attributes
	Transform *Transform
}

// Polygon is a closed <polygon> through Points.
type Polygon struct {
	Points    Points
	Attrs     Attributes
	Transform *Transform
}

// Text is a <text> element anchored at (X, Y). Content is written verbatim.
// The tag renders as `>content</text>` plus a newline, with no space before
// the `>`, like every other fragment.
type Text struct {
	X, Y      int
	Content   string
	Attrs     Attributes
	Transform *Transform
}

func (Circle) Kind() Kind      { return KindCircle }
func (Ellipse) Kind() Kind     { return KindEllipse }
func (Line) Kind() Kind        { return KindLine }
func (Rect) Kind() Kind        { return KindRect }
func (RoundedRect) Kind() Kind { return KindRoundedRect }
func (PolyLine) Kind() Kind    { return KindPolyLine }
func (Polygon) Kind() Kind     { return KindPolygon }
func (Text) Kind() Kind        { return KindText }

func (Circle) isShape()      {}
func (Ellipse) isShape()     {}
func (Line) isShape()        {}
func (Rect) isShape()        {}
func (RoundedRect) isShape() {}
func (PolyLine) isShape()    {}
func (Polygon) isShape()     {}
func (Text) isShape()        {}

// Render implements Element.
func (c Circle) Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<circle cx="%d" cy="%d" r="%d"`, c.X, c.Y, c.R)
	closeEmpty(&buf, c.Transform, c.Attrs)
	return buf.String()
}

// Render implements Element.
func (e Ellipse) Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<ellipse cx="%d" cy="%d" rx="%d" ry="%d"`, e.X, e.Y, e.RX, e.RY)
	closeEmpty(&buf, e.Transform, e.Attrs)
	return buf.String()
}

// Render implements Element.
func (l Line) Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<line x1="%d" y1="%d" x2="%d" y2="%d"`, l.X1, l.Y1, l.X2, l.Y2)
	closeEmpty(&buf, l.Transform, l.Attrs)
	return buf.String()
}

// Render implements Element.
func (r Rect) Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="%d"`, r.X, r.Y, r.Width, r.Height)
	closeEmpty(&buf, r.Transform, r.Attrs)
	return buf.String()
}

// Render implements Element.
func (r RoundedRect) Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="%d" rx="%d" ry="%d"`,
		r.X, r.Y, r.Width, r.Height, r.RX, r.RY)
	closeEmpty(&buf, r.Transform, r.Attrs)
	return buf.String()
}

// Render implements Element.
func (p PolyLine) Render() string {
	return renderPoly("polyline", p.Points, p.Transform, p.Attrs)
}

// Render implements Element.
func (p Polygon) Render() string {
	return renderPoly("polygon", p.Points, p.Transform, p.Attrs)
}

// Render implements Element.
func (t Text) Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<text x="%d" y="%d"`, t.X, t.Y)
	writeTransform(&buf, t.Transform)
	t.Attrs.writeTo(&buf)
	fmt.Fprintf(&buf, ">%s</text>\n", t.Content)
	return buf.String()
}

func renderPoly(tag string, pts Points, t *Transform, a Attributes) string {
	var buf bytes.Buffer
	buf.WriteString("<" + tag + " ")
	if pts != nil {
		pts.writePoints(&buf)
	} else {
		buf.WriteString(`points=""`)
	}
	closeEmpty(&buf, t, a)
	return buf.String()
}

// closeEmpty writes the transform, the free-form attributes and the
// self-closing terminator, in that order.
func closeEmpty(buf *bytes.Buffer, t *Transform, a Attributes) {
	writeTransform(buf, t)
	a.writeTo(buf)
	buf.WriteString(" />\n")
}

func writeTransform(buf *bytes.Buffer, t *Transform) {
	if t == nil {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(t.Get())
}
