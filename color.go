package shapes

import "image/color"

// Color represents a color with red, green, blue, and alpha components.
// Each component is an 8-bit value, matching the per-vertex color format
// of the vertex stream.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Color converts Color to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// Fade returns the color with its alpha scaled by the given factor.
// The factor is clamped to [0, 1].
func (c Color) Fade(alpha float32) Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float32(c.A) * alpha)
	return c
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA",
// with an optional leading '#'.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		}
	}
}

// Basic color palette.
var (
	Transparent = Color{}
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	LightGray   = Color{200, 200, 200, 255}
	Gray        = Color{130, 130, 130, 255}
	DarkGray    = Color{80, 80, 80, 255}
	Red         = Color{230, 41, 55, 255}
	Maroon      = Color{190, 33, 55, 255}
	Orange      = Color{255, 161, 0, 255}
	Gold        = Color{255, 203, 0, 255}
	Yellow      = Color{253, 249, 0, 255}
	Green       = Color{0, 228, 48, 255}
	Lime        = Color{0, 158, 47, 255}
	SkyBlue     = Color{102, 191, 255, 255}
	Blue        = Color{0, 121, 241, 255}
	DarkBlue    = Color{0, 82, 172, 255}
	Purple      = Color{200, 122, 255, 255}
	Violet      = Color{135, 60, 190, 255}
	Pink        = Color{255, 109, 194, 255}
	Magenta     = Color{255, 0, 255, 255}
	Brown       = Color{127, 106, 79, 255}
	Beige       = Color{211, 176, 131, 255}
)
