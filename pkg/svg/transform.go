package svg

import (
	"strconv"
	"strings"
)

// Transform accumulates transform operations into a single transform
// attribute. Operations are kept in call order; the resulting attribute
// applies them left to right, so callers must append them in the order they
// intend. A nil *Transform means "no transform".
type Transform struct {
	ops []string
}

// NewTransform returns an empty transform.
func NewTransform() *Transform {
	return &Transform{}
}

// Translate appends translate(x, y).
func (t *Transform) Translate(x, y float64) *Transform {
	return t.push("translate", x, y)
}

// Rotate appends rotate(angle), angle in degrees.
func (t *Transform) Rotate(angle float64) *Transform {
	return t.push("rotate", angle)
}

// RotateAround appends rotate(angle, cx, cy).
func (t *Transform) RotateAround(angle, cx, cy float64) *Transform {
	return t.push("rotate", angle, cx, cy)
}

// Scale appends scale(sx, sy).
func (t *Transform) Scale(sx, sy float64) *Transform {
	return t.push("scale", sx, sy)
}

// SkewX appends skewX(factor).
func (t *Transform) SkewX(factor float64) *Transform {
	return t.push("skewX", factor)
}

// SkewY appends skewY(factor).
func (t *Transform) SkewY(factor float64) *Transform {
	return t.push("skewY", factor)
}

// Matrix appends matrix(a, b, c, d, e, f).
func (t *Transform) Matrix(a, b, c, d, e, f float64) *Transform {
	return t.push("matrix", a, b, c, d, e, f)
}

// Len returns the number of operations.
func (t *Transform) Len() int { return len(t.ops) }

// Value returns the attribute value: the operations joined by single spaces.
func (t *Transform) Value() string {
	return strings.Join(t.ops, " ")
}

// Get returns the whole attribute, transform="...". A transform with no
// operations yields transform="".
func (t *Transform) Get() string {
	return `transform="` + t.Value() + `"`
}

// String implements fmt.Stringer and is the same as Get.
func (t *Transform) String() string { return t.Get() }

func (t *Transform) push(name string, args ...float64) *Transform {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(a))
	}
	b.WriteByte(')')
	t.ops = append(t.ops, b.String())
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
