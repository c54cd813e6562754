package pack

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/packviz/packviz/pkg/chart"
)

// seedBubbles derives radii and starting positions for every item.
//
// Radii come from [Radius] against a budget of 35% of the inscribed-circle
// radius, then get a one-shot global scale-down when their aggregate area
// would exceed 85% of the inscribed-circle area. Scaling never enlarges
// bubbles and never drops one below the floor radius.
//
// Bubbles are sorted largest-first; the largest is pinned at the exact
// container center as a stable anchor for relaxation, the rest are jittered
// uniformly within ±25% of the inscribed radius around the center.
func seedBubbles(items []chart.Item, width, height float64, rng *rand.Rand) []Bubble {
	inscribed := math.Min(width, height) / 2
	maxRadius := maxRadiusShare * inscribed

	var maxValue float64
	for _, it := range items {
		maxValue = math.Max(maxValue, it.Value)
	}

	bubbles := make([]Bubble, len(items))
	var totalArea float64
	for i, it := range items {
		r := Radius(it.Value, maxValue, maxRadius)
		bubbles[i] = Bubble{
			ID:    it.ID,
			Label: it.DisplayLabel(),
			Value: it.Value,
			Group: it.Group,
			R:     r,
			Item:  it,
		}
		totalArea += math.Pi * r * r
	}

	// Largest-first; ties keep input order so the result is deterministic.
	slices.SortStableFunc(bubbles, func(a, b Bubble) int {
		return cmp.Compare(b.R, a.R)
	})

	available := areaFill * math.Pi * inscribed * inscribed
	if scale := math.Sqrt(available / totalArea); scale < 1 {
		for i := range bubbles {
			bubbles[i].R = math.Max(MinRadius, bubbles[i].R*scale)
		}
	}

	cx, cy := width/2, height/2
	jitter := jitterShare * inscribed
	bubbles[0].X, bubbles[0].Y = cx, cy
	for i := 1; i < len(bubbles); i++ {
		bubbles[i].X = cx + (rng.Float64()*2-1)*jitter
		bubbles[i].Y = cy + (rng.Float64()*2-1)*jitter
	}

	return bubbles
}
