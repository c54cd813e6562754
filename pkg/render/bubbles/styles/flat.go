package styles

import (
	"bytes"
	"fmt"
)

// Flat renders bubbles as solid-fill circles with a thin darker stroke.
type Flat struct{}

// RenderDefs writes nothing; flat circles need no defs.
func (Flat) RenderDefs(buf *bytes.Buffer, circles []Circle) {}

// RenderCircle writes a solid circle with optional tooltip.
func (Flat) RenderCircle(buf *bytes.Buffer, c Circle) {
	fmt.Fprintf(buf, `  <circle id="bubble-%s" class="bubble" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="1.5" fill-opacity="0.9">`,
		EscapeXML(c.ID), c.X, c.Y, c.R, c.Color, darken(c.Color))
	if c.Tooltip {
		fmt.Fprintf(buf, `<title>%s: %s</title>`, EscapeXML(c.Label), formatValue(c.Value))
	}
	buf.WriteString("</circle>\n")
}

// RenderLabel writes centered label text, skipping circles too small to read.
func (Flat) RenderLabel(buf *bytes.Buffer, c Circle) {
	if ShouldSkipLabel(c) {
		return
	}
	fmt.Fprintf(buf, `  <text class="bubble-text" data-bubble="%s" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.1f" fill="#333" pointer-events="none">%s</text>`+"\n",
		EscapeXML(c.ID), c.X, c.Y, FontSize(c), EscapeXML(TruncateLabel(c)))
}

// Ensure Flat implements Style.
var _ Style = Flat{}
