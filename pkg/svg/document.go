package svg

import (
	"bytes"
	"fmt"
	"io"

	errs "github.com/matzehuels/svgdoc/pkg/errors"
)

const (
	standaloneYes = `<?xml version="1.0" standalone="yes"?>` + "\n"
	standaloneNo  = `<?xml version="1.0" standalone="no"?>` + "\n"
	docType       = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" ` +
		`"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">` + "\n"
	xmlns = `version="1.1" xmlns="http://www.w3.org/2000/svg" ` +
		`xmlns:xlink="http://www.w3.org/1999/xlink">` + "\n"
	rootClose = "</svg>\n"
)

// DefaultUnit is the length unit appended to the canvas width and height.
const DefaultUnit = "cm"

// Phase is the lifecycle state of a Document.
type Phase int

const (
	// Building accepts header changes and content.
	Building Phase = iota
	// Finalized has produced its output and accepts nothing further.
	Finalized
)

func (p Phase) String() string {
	switch p {
	case Building:
		return "building"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ViewBox is the user coordinate system mapped onto the canvas.
type ViewBox struct {
	X, Y, Width, Height int
}

// Head is the document header. Empty Title and Desc are omitted.
type Head struct {
	Width, Height int
	Unit          string
	ViewBox       *ViewBox
	Title         string
	Desc          string
	Standalone    bool
}

// Document is an SVG document under construction.
type Document struct {
	head    Head
	content bytes.Buffer
	groups  []Group
	phase   Phase
	err     error
}

// Option configures a Document at construction.
type Option func(*Head)

// WithUnit sets the unit suffix for the canvas size (default "cm").
func WithUnit(unit string) Option { return func(h *Head) { h.Unit = unit } }

// WithStandalone marks the document standalone="yes".
func WithStandalone() Option { return func(h *Head) { h.Standalone = true } }

// WithViewBox sets the view box.
func WithViewBox(x, y, width, height int) Option {
	return func(h *Head) { h.ViewBox = &ViewBox{X: x, Y: y, Width: width, Height: height} }
}

// WithTitle sets the <title> element.
func WithTitle(title string) Option { return func(h *Head) { h.Title = title } }

// WithDesc sets the <desc> element.
func WithDesc(desc string) Option { return func(h *Head) { h.Desc = desc } }

// New creates a document with a width x height canvas.
func New(width, height int, opts ...Option) *Document {
	d := &Document{head: Head{Width: width, Height: height, Unit: DefaultUnit}}
	for _, opt := range opts {
		opt(&d.head)
	}
	return d
}

// Head returns a copy of the current header.
func (d *Document) Head() Head {
	h := d.head
	if h.ViewBox != nil {
		vb := *h.ViewBox
		h.ViewBox = &vb
	}
	return h
}

// Phase returns the lifecycle state.
func (d *Document) Phase() Phase { return d.phase }

// Err returns the first error recorded by a builder call, if any.
func (d *Document) Err() error { return d.err }

// SetSize replaces the canvas width and height.
func (d *Document) SetSize(width, height int) {
	if d.building() {
		d.head.Width, d.head.Height = width, height
	}
}

// Standalone sets the standalone flag of the XML declaration.
func (d *Document) Standalone(standalone bool) {
	if d.building() {
		d.head.Standalone = standalone
	}
}

// ViewBox sets the view box.
func (d *Document) ViewBox(x, y, width, height int) {
	if d.building() {
		d.head.ViewBox = &ViewBox{X: x, Y: y, Width: width, Height: height}
	}
}

// Title sets the document title.
func (d *Document) Title(text string) {
	if d.building() {
		d.head.Title = text
	}
}

// Desc sets the document description.
func (d *Document) Desc(text string) {
	if d.building() {
		d.head.Desc = text
	}
}

// Add renders e and appends the fragment.
func (d *Document) Add(e Element) {
	if d.building() {
		d.content.WriteString(e.Render())
	}
}

// Circle appends a circle. attrs is a key=value string, see [ParseAttributes].
func (d *Document) Circle(x, y int, r uint, attrs string) {
	if a, ok := d.parse(attrs); ok {
		d.Add(Circle{X: x, Y: y, R: r, Attrs: a})
	}
}

// Rect appends a rectangle.
func (d *Document) Rect(x, y, width, height int, attrs string) {
	if a, ok := d.parse(attrs); ok {
		d.Add(Rect{X: x, Y: y, Width: width, Height: height, Attrs: a})
	}
}

// RoundedRect appends a rectangle with rounded corners.
func (d *Document) RoundedRect(x, y, width, height int, rx, ry uint, attrs string) {
	if a, ok := d.parse(attrs); ok {
		d.Add(RoundedRect{X: x, Y: y, Width: width, Height: height, RX: rx, RY: ry, Attrs: a})
	}
}

// Ellipse appends an ellipse.
func (d *Document) Ellipse(x, y int, rx, ry uint, attrs string) {
	if a, ok := d.parse(attrs); ok {
		d.Add(Ellipse{X: x, Y: y, RX: rx, RY: ry, Attrs: a})
	}
}

// Line appends a line segment.
func (d *Document) Line(x1, y1, x2, y2 int, attrs string) {
	if a, ok := d.parse(attrs); ok {
		d.Add(Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Attrs: a})
	}
}

// Polyline appends an open polyline through pts.
func (d *Document) Polyline(pts Points, attrs string) {
	if a, ok := d.parse(attrs); ok {
		d.Add(PolyLine{Points: pts, Attrs: a})
	}
}

// Polygon appends a closed polygon through pts.
func (d *Document) Polygon(pts Points, attrs string) {
	if a, ok := d.parse(attrs); ok {
		d.Add(Polygon{Points: pts, Attrs: a})
	}
}

// Text appends a text element. content is not escaped.
func (d *Document) Text(x, y int, content, attrs string) {
	if a, ok := d.parse(attrs); ok {
		d.Add(Text{X: x, Y: y, Content: content, Attrs: a})
	}
}

// Bytes assembles the document and moves it to the Finalized phase.
//
// It fails, leaving the document in the Building phase, if a builder call
// recorded an error or a group is still open. Calling it on a finalized
// document returns an [errs.ErrCodeFinalized] error.
func (d *Document) Bytes() ([]byte, error) {
	if d.phase == Finalized {
		return nil, errFinalized()
	}
	if d.err != nil {
		return nil, d.err
	}
	if n := len(d.groups); n > 0 {
		return nil, errUnbalanced("%d group(s) still open", n)
	}
	d.phase = Finalized
	return d.assemble(), nil
}

// Finalize assembles the document and writes it to w in a single Write.
// An error from w is returned as is; the document stays finalized.
func (d *Document) Finalize(w io.Writer) error {
	b, err := d.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (d *Document) assemble() []byte {
	var buf bytes.Buffer
	buf.Grow(d.content.Len() + 512)

	if d.head.Standalone {
		buf.WriteString(standaloneYes)
	} else {
		buf.WriteString(standaloneNo)
	}
	buf.WriteString(docType)
	fmt.Fprintf(&buf, `<svg width="%d%s" height="%d%s" `, d.head.Width, d.head.Unit, d.head.Height, d.head.Unit)
	if vb := d.head.ViewBox; vb != nil {
		fmt.Fprintf(&buf, `viewBox="%d %d %d %d " `, vb.X, vb.Y, vb.Width, vb.Height)
	}
	buf.WriteString(xmlns)
	if d.head.Title != "" {
		fmt.Fprintf(&buf, "<title>%s</title>\n", d.head.Title)
	}
	if d.head.Desc != "" {
		fmt.Fprintf(&buf, "<desc>%s</desc>\n", d.head.Desc)
	}
	buf.Write(d.content.Bytes())
	buf.WriteString(rootClose)
	return buf.Bytes()
}

// building reports whether the document accepts changes. Once finalized,
// any change is recorded as an error.
func (d *Document) building() bool {
	if d.err != nil {
		return false
	}
	if d.phase == Finalized {
		d.err = errFinalized()
		return false
	}
	return true
}

func (d *Document) parse(attrs string) (Attributes, bool) {
	if !d.building() {
		return Attributes{}, false
	}
	a, err := ParseAttributes(attrs)
	if err != nil {
		d.fail(err)
		return Attributes{}, false
	}
	return a, true
}

func (d *Document) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func errFinalized() error {
	return errs.New(errs.ErrCodeFinalized, "document already finalized")
}

func errUnbalanced(format string, args ...any) error {
	return errs.New(errs.ErrCodeUnbalancedGroup, format, args...)
}
