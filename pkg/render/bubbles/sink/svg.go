package sink

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/render/bubbles/styles"
)

const bubbleInteractionCSS = `
    .bubble { transition: stroke-width 0.2s ease; }
    .bubble.highlight { stroke-width: 4; }
    .bubble-text { transition: transform 0.2s ease; transform-origin: center; transform-box: fill-box; }
    .bubble-text.highlight { transform: scale(1.08); font-weight: bold; }`

const bubbleInteractionJS = `
    function highlight(ids) {
      document.querySelectorAll('.bubble').forEach(b => b.classList.toggle('highlight', ids.includes(b.id.replace('bubble-', ''))));
      document.querySelectorAll('.bubble-text').forEach(t => t.classList.toggle('highlight', ids.includes(t.dataset.bubble)));
    }
    function clearHighlight() {
      document.querySelectorAll('.bubble, .bubble-text').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.bubble').forEach(el => {
      el.addEventListener('mouseenter', () => highlight([el.id.replace('bubble-', '')]));
      el.addEventListener('mouseleave', clearHighlight);
    });`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	labels   bool
	tooltips bool
	legend   bool
}

// WithStyle selects the visual style. Defaults to [styles.Flat].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLabels enables text labels inside bubbles.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithTooltips enables hover tooltips showing "{label}: {value}".
func WithTooltips() SVGOption { return func(r *svgRenderer) { r.tooltips = true } }

// WithLegend appends a group color legend panel below the chart.
func WithLegend() SVGOption { return func(r *svgRenderer) { r.legend = true } }

// RenderSVG renders a packed layout as a standalone SVG document.
func RenderSVG(l chart.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	circles := buildCircles(l, r.tooltips)
	slices.SortFunc(circles, func(a, b styles.Circle) int {
		return cmp.Compare(a.ID, b.ID)
	})

	showLegend := r.legend && len(l.Legend) > 0
	totalHeight := l.Height
	if showLegend {
		totalHeight += calcLegendPanelHeight(l.Legend)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, totalHeight, l.Width, totalHeight)

	r.style.RenderDefs(&buf, circles)
	renderContent(&buf, &r, circles)

	if l.Title != "" {
		renderTitle(&buf, l.Width, l.Title)
	}

	renderBubbleInteraction(&buf)

	if showLegend {
		renderLegendPanel(&buf, l.Width, l.Height, l.Legend)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Flat{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderContent(buf *bytes.Buffer, r *svgRenderer, circles []styles.Circle) {
	for _, c := range circles {
		r.style.RenderCircle(buf, c)
	}
	if !r.labels {
		return
	}
	for _, c := range circles {
		r.style.RenderLabel(buf, c)
	}
}

func renderTitle(buf *bytes.Buffer, width float64, title string) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="28" text-anchor="middle" font-family="sans-serif" font-size="20" font-weight="bold" fill="#333" pointer-events="none">%s</text>`+"\n",
		width/2, styles.EscapeXML(title))
}

func renderBubbleInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", bubbleInteractionCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", bubbleInteractionJS)
}

func buildCircles(l chart.Layout, tooltips bool) []styles.Circle {
	circles := make([]styles.Circle, 0, len(l.Bubbles))
	for _, b := range l.Bubbles {
		circles = append(circles, styles.Circle{
			ID:      b.ID,
			Label:   b.Label,
			Value:   b.Value,
			Group:   b.Group,
			Color:   b.Color,
			X:       b.X,
			Y:       b.Y,
			R:       b.R,
			Tooltip: tooltips,
		})
	}
	return circles
}
