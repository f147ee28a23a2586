package svg

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type usable as a coordinate.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a coordinate pair.
type Point[T Number] struct {
	X, Y T
}

// Pt returns the point (x, y).
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Points is a sequence of coordinates for [PolyLine] and [Polygon].
// It is implemented only by [PointList].
type Points interface {
	Len() int
	writePoints(buf *bytes.Buffer)
}

// PointList is an ordered list of points of one coordinate type.
type PointList[T Number] []Point[T]

// Pts collects points into a PointList.
func Pts[T Number](pts ...Point[T]) PointList[T] {
	return PointList[T](pts)
}

// Add appends the point (x, y).
func (p *PointList[T]) Add(x, y T) {
	*p = append(*p, Point[T]{X: x, Y: y})
}

// Len returns the number of points.
func (p PointList[T]) Len() int { return len(p) }

// writePoints writes points="x1,y1 x2,y2 " with a space after every pair.
func (p PointList[T]) writePoints(buf *bytes.Buffer) {
	buf.WriteString(`points="`)
	for _, pt := range p {
		fmt.Fprintf(buf, "%v,%v ", pt.X, pt.Y)
	}
	buf.WriteByte('"')
}
