package sink

import (
	"bytes"
	"fmt"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/render/bubbles/styles"
)

const (
	legendPadding    = 16.0
	legendRowHeight  = 28.0
	legendSwatchSize = 14.0
	legendEntryWidth = 160.0
	legendFontSize   = 14.0
)

// calcLegendPanelHeight returns the extra height needed below the chart
// for the legend rows. Entries wrap into rows of legendPerRow.
func calcLegendPanelHeight(entries []chart.LegendEntry) float64 {
	rows := (len(entries) + legendPerRow - 1) / legendPerRow
	return 2*legendPadding + float64(rows)*legendRowHeight
}

const legendPerRow = 4

func renderLegendPanel(buf *bytes.Buffer, frameWidth, frameHeight float64, entries []chart.LegendEntry) {
	panelY := frameHeight + legendPadding

	perRow := min(len(entries), legendPerRow)
	rowWidth := float64(perRow) * legendEntryWidth
	startX := (frameWidth - rowWidth) / 2
	if startX < legendPadding {
		startX = legendPadding
	}

	for i, e := range entries {
		row, col := i/legendPerRow, i%legendPerRow
		x := startX + float64(col)*legendEntryWidth
		y := panelY + float64(row)*legendRowHeight

		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.0f" height="%.0f" rx="3" fill="%s"/>`+"\n",
			x, y, legendSwatchSize, legendSwatchSize, e.Color)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="#333">%s</text>`+"\n",
			x+legendSwatchSize+8, y+legendSwatchSize-2, legendFontSize, styles.EscapeXML(e.Group))
	}
}
