package vg

import "image/color"

// Color is an 8-bit per channel, non-premultiplied ARGB color.
// It implements color.Color, so it can be handed to image/draw and
// rasterizer backends directly.
type Color struct {
	A, R, G, B uint8
}

// ARGB creates a color from its four channels.
func ARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{A: 0xff, R: r, G: g, B: b}
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return Color{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// Value packs the color as 0xAARRGGBB.
func (c Color) Value() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// NRGBA returns the equivalent color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. The second result is false for malformed input, in which case
// opaque black is returned.
func Hex(hex string) (Color, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Color{A: 255}, false
	}
	return Color{A: uint8(a), R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
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
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = ARGB(0, 0, 0, 0)
)
