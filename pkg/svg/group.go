package svg

import (
	"bytes"
	"fmt"
)

// Group describes a <g> element. Every fragment appended between its opening
// and the matching close falls inside it. All fields are optional.
type Group struct {
	ID        string
	Transform *Transform
	Attrs     Attributes
}

const groupClose = "</g>\n"

// open renders the opening tag: id, then transform, then attributes.
func (g Group) open() string {
	var buf bytes.Buffer
	buf.WriteString("<g")
	if g.ID != "" {
		fmt.Fprintf(&buf, ` id="%s"`, g.ID)
	}
	writeTransform(&buf, g.Transform)
	g.Attrs.writeTo(&buf)
	buf.WriteString(">\n")
	return buf.String()
}

// GroupBegin opens a group. Empty id, nil t and a zero attrs are omitted.
func (d *Document) GroupBegin(id string, t *Transform, attrs Attributes) {
	d.openGroup(Group{ID: id, Transform: t, Attrs: attrs})
}

// GroupID opens a group carrying only an id.
func (d *Document) GroupID(id string) {
	d.openGroup(Group{ID: id})
}

// GroupTransform opens a group carrying only a transform.
func (d *Document) GroupTransform(t *Transform) {
	d.openGroup(Group{Transform: t})
}

// GroupAttrs opens a group carrying only free-form attributes.
func (d *Document) GroupAttrs(attrs Attributes) {
	d.openGroup(Group{Attrs: attrs})
}

// GroupTranslate opens a group translated by (x, y).
func (d *Document) GroupTranslate(x, y float64) {
	d.GroupTransform(NewTransform().Translate(x, y))
}

// GroupRotate opens a group rotated by angle degrees.
func (d *Document) GroupRotate(angle float64) {
	d.GroupTransform(NewTransform().Rotate(angle))
}

// GroupScale opens a group scaled by (sx, sy).
func (d *Document) GroupScale(sx, sy float64) {
	d.GroupTransform(NewTransform().Scale(sx, sy))
}

// GroupSkew opens a group skewed along x then y.
func (d *Document) GroupSkew(x, y float64) {
	d.GroupTransform(NewTransform().SkewX(x).SkewY(y))
}

// GroupEnd closes the innermost open group. Closing when no group is open
// records an [errs.ErrCodeUnbalancedGroup] error.
func (d *Document) GroupEnd() {
	if !d.building() {
		return
	}
	if len(d.groups) == 0 {
		d.fail(errUnbalanced("GroupEnd called with no open group"))
		return
	}
	d.groups = d.groups[:len(d.groups)-1]
	d.content.WriteString(groupClose)
}

// WithGroup opens g, calls fn and closes g again. If fn leaves the nesting
// changed (an extra open, or a close of g itself) an
// [errs.ErrCodeUnbalancedGroup] error is recorded instead.
func (d *Document) WithGroup(g Group, fn func(d *Document)) {
	d.openGroup(g)
	depth := len(d.groups)
	defer func() {
		if d.err != nil {
			return
		}
		if len(d.groups) != depth {
			d.fail(errUnbalanced("group body changed nesting depth from %d to %d", depth, len(d.groups)))
			return
		}
		d.GroupEnd()
	}()
	fn(d)
}

// Depth returns the number of groups currently open.
func (d *Document) Depth() int { return len(d.groups) }

func (d *Document) openGroup(g Group) {
	if !d.building() {
		return
	}
	d.groups = append(d.groups, g)
	d.content.WriteString(g.open())
}
