package styles

import (
	"bytes"
	"fmt"
)

// Shaded renders bubbles with a radial gradient and soft drop shadow,
// giving a lit-sphere look.
type Shaded struct{}

// RenderDefs writes one radial gradient per distinct fill color plus a
// shared shadow filter.
func (Shaded) RenderDefs(buf *bytes.Buffer, circles []Circle) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <filter id="bubble-shadow" x="-20%" y="-20%" width="140%" height="140%">` + "\n")
	buf.WriteString(`      <feDropShadow dx="0" dy="2" stdDeviation="3" flood-opacity="0.25"/>` + "\n")
	buf.WriteString("    </filter>\n")

	seen := make(map[string]struct{})
	for _, c := range circles {
		if _, ok := seen[c.Color]; ok {
			continue
		}
		seen[c.Color] = struct{}{}
		fmt.Fprintf(buf, `    <radialGradient id="grad-%s" cx="35%%" cy="30%%" r="75%%">`+"\n", gradientID(c.Color))
		fmt.Fprintf(buf, `      <stop offset="0%%" stop-color="%s"/>`+"\n", lighten(c.Color))
		fmt.Fprintf(buf, `      <stop offset="100%%" stop-color="%s"/>`+"\n", c.Color)
		buf.WriteString("    </radialGradient>\n")
	}
	buf.WriteString("  </defs>\n")
}

// RenderCircle writes a gradient-filled circle with shadow and optional tooltip.
func (Shaded) RenderCircle(buf *bytes.Buffer, c Circle) {
	fmt.Fprintf(buf, `  <circle id="bubble-%s" class="bubble" cx="%.1f" cy="%.1f" r="%.1f" fill="url(#grad-%s)" stroke="%s" stroke-width="1" filter="url(#bubble-shadow)">`,
		EscapeXML(c.ID), c.X, c.Y, c.R, gradientID(c.Color), darken(c.Color))
	if c.Tooltip {
		fmt.Fprintf(buf, `<title>%s: %s</title>`, EscapeXML(c.Label), formatValue(c.Value))
	}
	buf.WriteString("</circle>\n")
}

// RenderLabel writes centered label text, skipping circles too small to read.
func (Shaded) RenderLabel(buf *bytes.Buffer, c Circle) {
	if ShouldSkipLabel(c) {
		return
	}
	fmt.Fprintf(buf, `  <text class="bubble-text" data-bubble="%s" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.1f" fill="#222" pointer-events="none">%s</text>`+"\n",
		EscapeXML(c.ID), c.X, c.Y, FontSize(c), EscapeXML(TruncateLabel(c)))
}

// gradientID derives a defs-safe identifier from a hex color.
func gradientID(color string) string {
	id := make([]byte, 0, len(color))
	for i := 0; i < len(color); i++ {
		if color[i] == '#' {
			continue
		}
		id = append(id, color[i])
	}
	return string(id)
}

// Ensure Shaded implements Style.
var _ Style = Shaded{}
