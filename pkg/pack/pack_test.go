package pack

import (
	"math"
	"reflect"
	"testing"

	"github.com/packviz/packviz/pkg/chart"
)

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil, 600, 600); got != nil {
		t.Errorf("Build(nil) = %v, want nil", got)
	}
	if got := Build([]chart.Item{}, 600, 600); got != nil {
		t.Errorf("Build(empty) = %v, want nil", got)
	}
}

func TestBuildSingleItem(t *testing.T) {
	bubbles := Build([]chart.Item{{ID: "only", Value: 42}}, 600, 600)

	if len(bubbles) != 1 {
		t.Fatalf("got %d bubbles, want 1", len(bubbles))
	}
	b := bubbles[0]

	// With no neighbors to repel against, the anchor stays at the exact center.
	if b.X != 300 || b.Y != 300 {
		t.Errorf("position = (%v, %v), want exact center (300, 300)", b.X, b.Y)
	}

	// A lone item is its own maximum, so it gets the full radius budget:
	// 35% of the inscribed-circle radius.
	if want := 0.35 * 300; math.Abs(b.R-want) > 1e-9 {
		t.Errorf("radius = %v, want %v", b.R, want)
	}
}

func TestBuildDeterministic(t *testing.T) {
	items := []chart.Item{
		{ID: "a", Value: 50, Group: "x"},
		{ID: "b", Value: 30, Group: "y"},
		{ID: "c", Value: 20, Group: "x"},
		{ID: "d", Value: 10},
	}

	first := Build(items, 640, 480, WithSeed(7))
	second := Build(items, 640, 480, WithSeed(7))

	if !reflect.DeepEqual(first, second) {
		t.Error("two builds with the same seed should be bit-identical")
	}

	different := Build(items, 640, 480, WithSeed(8))
	same := true
	for i := range different {
		if different[i].X != first[i].X || different[i].Y != first[i].Y {
			same = false
		}
	}
	if same {
		t.Error("a different seed should produce different jitter")
	}
}

func TestBuildLargestFirstOrder(t *testing.T) {
	items := []chart.Item{
		{ID: "small", Value: 1},
		{ID: "big", Value: 100},
		{ID: "mid", Value: 50},
	}

	bubbles := Build(items, 600, 600)

	if bubbles[0].ID != "big" || bubbles[1].ID != "mid" || bubbles[2].ID != "small" {
		t.Errorf("order = [%s %s %s], want largest-first", bubbles[0].ID, bubbles[1].ID, bubbles[2].ID)
	}
	for i := 1; i < len(bubbles); i++ {
		if bubbles[i].R > bubbles[i-1].R {
			t.Errorf("radius order violated at %d: %v > %v", i, bubbles[i].R, bubbles[i-1].R)
		}
	}
}

func TestBuildColors(t *testing.T) {
	items := []chart.Item{
		{ID: "a", Value: 10, Group: "g1"},
		{ID: "b", Value: 20, Group: "g2"},
		{ID: "c", Value: 30, Group: "g1", Color: "#override"},
		{ID: "d", Value: 40},
	}
	scheme := []string{"#one", "#two"}

	bubbles := Build(items, 600, 600, WithScheme(scheme))

	byID := make(map[string]Bubble)
	for _, b := range bubbles {
		byID[b.ID] = b
	}

	if got := byID["a"].Color; got != "#one" {
		t.Errorf("first group color = %q, want #one", got)
	}
	if got := byID["b"].Color; got != "#two" {
		t.Errorf("second group color = %q, want #two", got)
	}
	if got := byID["c"].Color; got != "#override" {
		t.Errorf("explicit color = %q, want #override", got)
	}
	if got := byID["d"].Color; got != "#one" {
		t.Errorf("ungrouped color = %q, want scheme fallback #one", got)
	}
}

func TestBuildAllZeroValues(t *testing.T) {
	items := []chart.Item{
		{ID: "a", Value: 0},
		{ID: "b", Value: 0},
		{ID: "c", Value: 0},
	}

	bubbles := Build(items, 400, 400)

	for _, b := range bubbles {
		if b.R != MinRadius {
			t.Errorf("bubble %s radius = %v, want floor %v", b.ID, b.R, MinRadius)
		}
	}
}

// Two items with a 4:1 value ratio inside a roomy container: the radii keep
// the exact 2:1 square-root ratio, the circles end up separated, and both
// stay inside the frame.
func TestBuildTwoBubbleScenario(t *testing.T) {
	items := []chart.Item{
		{ID: "1", Value: 100},
		{ID: "2", Value: 25},
	}

	bubbles := Build(items, 600, 600)

	if len(bubbles) != 2 {
		t.Fatalf("got %d bubbles, want 2", len(bubbles))
	}
	big, small := bubbles[0], bubbles[1]

	if big.ID != "1" {
		t.Fatalf("largest-first order violated: first is %s", big.ID)
	}
	if ratio := big.R / small.R; math.Abs(ratio-2) > 1e-9 {
		t.Errorf("radius ratio = %v, want 2 (sqrt(100/25))", ratio)
	}

	dist := math.Hypot(big.X-small.X, big.Y-small.Y)
	if dist+1e-9 < big.R+small.R {
		t.Errorf("bubbles overlap: dist %v < %v", dist, big.R+small.R)
	}

	for _, b := range bubbles {
		if b.X-b.R < -1 || b.X+b.R > 601 || b.Y-b.R < -1 || b.Y+b.R > 601 {
			t.Errorf("bubble %s out of bounds: (%v, %v) r=%v", b.ID, b.X, b.Y, b.R)
		}
	}
}

func TestBuildAreaBudgetShrinks(t *testing.T) {
	// Many equal items would vastly exceed the 85% inscribed-circle budget at
	// full radius, so the one-shot scale-down must kick in.
	var items []chart.Item
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		items = append(items, chart.Item{ID: id, Value: 100})
	}

	bubbles := Build(items, 400, 400, WithIterations(0))

	inscribed := 200.0
	unscaled := 0.35 * inscribed
	var total float64
	for _, b := range bubbles {
		if b.R >= unscaled {
			t.Errorf("bubble %s radius %v not scaled below budget %v", b.ID, b.R, unscaled)
		}
		if b.R < MinRadius {
			t.Errorf("bubble %s radius %v below floor", b.ID, b.R)
		}
		total += math.Pi * b.R * b.R
	}

	available := 0.85 * math.Pi * inscribed * inscribed
	if total > available*1.001 {
		t.Errorf("total bubble area %v exceeds budget %v", total, available)
	}
}
