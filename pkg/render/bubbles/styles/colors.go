package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// darken returns a stroke color derived from the fill by scaling each
// channel down. Non-hex inputs are returned unchanged.
func darken(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	const factor = 0.7
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(float64(r)*factor),
		uint8(float64(g)*factor),
		uint8(float64(b)*factor))
}

// lighten returns a highlight color derived from the fill by blending
// toward white. Non-hex inputs are returned unchanged.
func lighten(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	const factor = 0.45
	blend := func(c uint8) uint8 {
		return uint8(float64(c) + (255-float64(c))*factor)
	}
	return fmt.Sprintf("#%02x%02x%02x", blend(r), blend(g), blend(b))
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// formatValue renders a value without trailing zeros (42, 3.5, 0.25).
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
