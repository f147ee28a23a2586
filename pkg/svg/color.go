package svg

import "fmt"

// RGB returns an rgb(r, g, b) color value.
func RGB(r, g, b uint8) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// RGBA returns an rgba(r, g, b, a) color value. Alpha is clamped to [0, 1].
func RGBA(r, g, b uint8, alpha float64) string {
	alpha = min(max(alpha, 0), 1)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatFloat(alpha))
}
