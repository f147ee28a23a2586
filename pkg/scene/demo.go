package scene

// Demo returns a small sample drawing: plain and rounded rectangles and
// circles on a 1200x400 view box, with a translated group.
func Demo() *Scene {
	const style = "fill=red stroke=blue stroke-width=10"
	const alt = "fill=green stroke=orange stroke-width=2"

	return &Scene{
		Width:   12,
		Height:  12,
		Title:   "svgdoc demo",
		Desc:    "Circles and rectangles on a 1200x400 view box",
		ViewBox: &Box{X: 0, Y: 0, Width: 1200, Height: 400},
		Elements: []Element{
			{Kind: KindCircle, X: 600, Y: 200, R: 100, Attrs: style},
			{Kind: KindCircle, X: 100, Y: 100, R: 50, Attrs: alt},
			{Kind: KindRect, X: 700, Y: 200, Width: 200, Height: 200, Attrs: style},
			{Kind: KindRect, X: 200, Y: 200, Width: 200, Height: 200, Attrs: alt},
			{Kind: KindRect, X: 800, Y: 600, Width: 200, Height: 200, RX: 60, RY: 30, Attrs: style},
			{Kind: KindRect, X: 400, Y: 400, Width: 200, Height: 200, RX: 30, RY: 30, Attrs: alt},
			{
				Kind:      KindGroup,
				ID:        "markers",
				Transform: []Op{{Op: "translate", Args: []float64{950, 50}}},
				Children: []Element{
					{Kind: KindPolygon, Points: [][]float64{{0, 0}, {60, 0}, {30, 50}}, Attrs: "fill=purple"},
					{Kind: KindText, X: 0, Y: 80, Text: "svgdoc", Attrs: "font-size=24"},
				},
			},
		},
	}
}
