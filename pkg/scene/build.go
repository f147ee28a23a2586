package scene

import (
	"fmt"
	"slices"

	errs "github.com/matzehuels/svgdoc/pkg/errors"
	"github.com/matzehuels/svgdoc/pkg/svg"
)

// opArity lists the accepted argument counts for each transform op.
var opArity = map[string][]int{
	"translate": {1, 2},
	"rotate":    {1, 3},
	"scale":     {1, 2},
	"skewX":     {1},
	"skewY":     {1},
	"matrix":    {6},
}

// Units lists the length units accepted for the canvas size.
var Units = []string{"cm", "mm", "in", "pt", "pc", "px", "em", "ex", "%"}

// Validate checks the scene without building it.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errs.New(errs.ErrCodeInvalidScene, "canvas size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Unit != "" && !slices.Contains(Units, s.Unit) {
		return errs.New(errs.ErrCodeInvalidFormat, "unknown unit %q, want one of %v", s.Unit, Units)
	}
	for i, e := range s.Elements {
		if err := e.validate(fmt.Sprintf("element[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (e Element) validate(path string) error {
	switch e.Kind {
	case KindCircle, KindEllipse, KindLine, KindRect, KindText:
	case KindPolyline, KindPolygon:
		for i, p := range e.Points {
			if len(p) != 2 {
				return invalid(path, "point %d has %d coordinates, want 2", i, len(p))
			}
		}
	case KindGroup:
		for i, c := range e.Children {
			if err := c.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
				return err
			}
		}
	case "":
		return invalid(path, "missing kind")
	default:
		return invalid(path, "unknown kind %q", e.Kind)
	}

	if e.Kind != KindGroup && len(e.Children) > 0 {
		return invalid(path, "%s cannot have children", e.Kind)
	}
	for i, op := range e.Transform {
		arity, ok := opArity[op.Op]
		if !ok {
			return invalid(path, "transform[%d]: unknown op %q", i, op.Op)
		}
		if !slices.Contains(arity, len(op.Args)) {
			return invalid(path, "transform[%d]: %s takes %v arguments, got %d", i, op.Op, arity, len(op.Args))
		}
	}
	if _, err := svg.ParseAttributes(e.Attrs); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidScene, err, "%s", path)
	}
	return nil
}

// Build validates the scene and renders it into a new document.
func (s *Scene) Build() (*svg.Document, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	opts := []svg.Option{svg.WithTitle(s.Title), svg.WithDesc(s.Desc)}
	if s.Unit != "" {
		opts = append(opts, svg.WithUnit(s.Unit))
	}
	if s.Standalone {
		opts = append(opts, svg.WithStandalone())
	}
	if vb := s.ViewBox; vb != nil {
		opts = append(opts, svg.WithViewBox(vb.X, vb.Y, vb.Width, vb.Height))
	}

	d := svg.New(s.Width, s.Height, opts...)
	for _, e := range s.Elements {
		e.addTo(d)
	}
	return d, d.Err()
}

func (e Element) addTo(d *svg.Document) {
	attrs := e.attributes()
	t := e.transform()

	switch e.Kind {
	case KindCircle:
		d.Add(svg.Circle{X: e.X, Y: e.Y, R: e.R, Attrs: attrs, Transform: t})
	case KindEllipse:
		d.Add(svg.Ellipse{X: e.X, Y: e.Y, RX: e.RX, RY: e.RY, Attrs: attrs, Transform: t})
	case KindLine:
		d.Add(svg.Line{X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2, Attrs: attrs, Transform: t})
	case KindRect:
		if e.RX > 0 || e.RY > 0 {
			d.Add(svg.RoundedRect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height, RX: e.RX, RY: e.RY, Attrs: attrs, Transform: t})
		} else {
			d.Add(svg.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height, Attrs: attrs, Transform: t})
		}
	case KindPolyline:
		d.Add(svg.PolyLine{Points: e.points(), Attrs: attrs, Transform: t})
	case KindPolygon:
		d.Add(svg.Polygon{Points: e.points(), Attrs: attrs, Transform: t})
	case KindText:
		d.Add(svg.Text{X: e.X, Y: e.Y, Content: e.Text, Attrs: attrs, Transform: t})
	case KindGroup:
		d.WithGroup(svg.Group{ID: e.ID, Transform: t, Attrs: attrs}, func(d *svg.Document) {
			for _, c := range e.Children {
				c.addTo(d)
			}
		})
	}
}

// attributes returns the parsed attribute string, with id first for shapes.
// The string has already been validated.
func (e Element) attributes() svg.Attributes {
	parsed := svg.MustParseAttributes(e.Attrs)
	if e.Kind == KindGroup || e.ID == "" {
		return parsed
	}
	attrs := svg.Attrs("id", e.ID)
	for _, k := range parsed.Keys() {
		v, _ := parsed.Get(k)
		attrs.Set(k, v)
	}
	return attrs
}

func (e Element) transform() *svg.Transform {
	if len(e.Transform) == 0 {
		return nil
	}
	t := svg.NewTransform()
	for _, op := range e.Transform {
		a := op.Args
		switch op.Op {
		case "translate":
			if len(a) == 1 {
				t.Translate(a[0], 0)
			} else {
				t.Translate(a[0], a[1])
			}
		case "rotate":
			if len(a) == 3 {
				t.RotateAround(a[0], a[1], a[2])
			} else {
				t.Rotate(a[0])
			}
		case "scale":
			if len(a) == 1 {
				t.Scale(a[0], a[0])
			} else {
				t.Scale(a[0], a[1])
			}
		case "skewX":
			t.SkewX(a[0])
		case "skewY":
			t.SkewY(a[0])
		case "matrix":
			t.Matrix(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	}
	return t
}

func (e Element) points() svg.PointList[float64] {
	pts := make(svg.PointList[float64], 0, len(e.Points))
	for _, p := range e.Points {
		pts.Add(p[0], p[1])
	}
	return pts
}

func invalid(path, format string, args ...any) error {
	return errs.New(errs.ErrCodeInvalidScene, "%s: %s", path, fmt.Sprintf(format, args...))
}
