package tint

import "image/color"

// FromStdColor converts a standard library color.Color into an
// encoded sRGB color with separate alpha. The standard library's
// 16-bit channels are unpremultiplied first via color.NRGBA64.
func FromStdColor(c color.Color) ColorAlpha[EncodedSrgb, Separate] {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return SRGBA[Separate](
		float32(n.R)/65535,
		float32(n.G)/65535,
		float32(n.B)/65535,
		float32(n.A)/65535,
	)
}

// StdColor converts an encoded sRGB color with separate alpha to a
// standard library color.NRGBA, clamping each channel into range.
func StdColor(c ColorAlpha[EncodedSrgb, Separate]) color.NRGBA {
	s := c.Saturate()
	b := s.ToU8()
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// HexColor creates an encoded sRGB color with separate alpha from a
// hex string. Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA",
// with an optional leading '#'. Malformed input yields opaque black.
func HexColor(hex string) ColorAlpha[EncodedSrgb, Separate] {
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
		return SRGBA[Separate](0, 0, 0, 1)
	}

	return SRGBA[Separate](
		float32(r)/255,
		float32(g)/255,
		float32(b)/255,
		float32(a)/255,
	)
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
		default:
			return
		}
	}
}
