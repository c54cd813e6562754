package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontCharWidth = 0.55
	fontSizeMin   = 8.0
	fontSizeMax   = 24.0

	// Circles smaller than this get no label at all.
	minLabelRadius = 14.0
)

// FontSize picks a label size that fits inside the circle's inscribed width.
func FontSize(c Circle) float64 {
	n := max(1, len(c.Label))
	// Usable chord width at the vertical center, with some margin.
	avail := c.R * 1.6
	byWidth := avail / (float64(n) * fontCharWidth)
	byHeight := c.R * 0.5
	return max(fontSizeMin, min(fontSizeMax, min(byWidth, byHeight)))
}

// ShouldSkipLabel reports whether the circle is too small for readable text.
func ShouldSkipLabel(c Circle) bool {
	return c.R < minLabelRadius
}

// TruncateLabel shortens a label that would overflow the circle.
func TruncateLabel(c Circle) string {
	label := c.Label
	fontSize := FontSize(c)
	maxChars := int((c.R * 1.6) / (fontSize * fontCharWidth))
	if maxChars < 3 {
		maxChars = 3
	}
	if len(label) <= maxChars {
		return label
	}
	return label[:maxChars-2] + ".."
}

// EscapeXML escapes text for safe embedding in SVG.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
