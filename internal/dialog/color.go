package dialog

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a chosen color in both representations.
type Color struct {
	Hex string
	RGB [3]uint8
}

// NewColor builds a Color from an RGB triple.
func NewColor(rgb [3]uint8) Color {
	return Color{Hex: RGBToHex(rgb), RGB: rgb}
}

// ColorValue is the seed of a color chooser: either a hex string or an RGB
// triple.
type ColorValue struct {
	hex   string
	rgb   [3]uint8
	isHex bool
}

// HexColor seeds a chooser with a hex string such as "#ff8800" or "ff8800".
func HexColor(hex string) ColorValue {
	return ColorValue{hex: hex, isHex: true}
}

// RGBColor seeds a chooser with an RGB triple.
func RGBColor(rgb [3]uint8) ColorValue {
	return ColorValue{rgb: rgb}
}

// RGB resolves the seed to a triple, parsing hex leniently.
func (v ColorValue) RGB() [3]uint8 {
	if v.isHex {
		return HexToRGB(v.hex)
	}
	return v.rgb
}

// Hex resolves the seed to a normalized "#rrggbb" string.
func (v ColorValue) Hex() string {
	return RGBToHex(v.RGB())
}

// RGBToHex formats a triple as lowercase "#rrggbb".
func RGBToHex(rgb [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// HexToRGB parses "#rrggbb" or "rrggbb". It never fails: a channel whose two
// digits are not valid hex, or that is missing, becomes 0.
func HexToRGB(hex string) [3]uint8 {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var rgb [3]uint8
	for i := range rgb {
		start := i * 2
		if start+2 > len(hex) {
			break
		}
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		if err != nil {
			continue
		}
		rgb[i] = uint8(v)
	}
	return rgb
}

// ParseColor understands the textual color forms dialog tools print:
// "#rrggbb", "#rrrrggggbbbb", "rgb(r,g,b)" and "rgba(r,g,b,a)". The second
// result is false when s is none of them.
func ParseColor(s string) ([3]uint8, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		digits := s[1:]
		if len(digits) == 12 {
			// 16 bits per channel; keep the high byte.
			digits = digits[0:2] + digits[4:6] + digits[8:10]
		}
		return HexToRGB(digits), true
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		inner := s[strings.Index(s, "(")+1:]
		inner = strings.TrimSuffix(inner, ")")
		parts := strings.Split(inner, ",")
		if len(parts) < 3 {
			return [3]uint8{}, false
		}
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			rgb[i] = parseChannel(parts[i])
		}
		return rgb, true
	}
	return [3]uint8{}, false
}

// parseChannel accepts "0".."255" and clamps anything else leniently.
func parseChannel(s string) uint8 {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v + 0.5)
}
