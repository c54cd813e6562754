package pack_test

import (
	"fmt"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/pack"
)

func ExampleBuild() {
	items := []chart.Item{
		{ID: "go", Label: "Go", Value: 120, Group: "backend"},
		{ID: "ts", Label: "TypeScript", Value: 80, Group: "frontend"},
		{ID: "py", Label: "Python", Value: 60, Group: "backend"},
	}

	bubbles := pack.Build(items, 800, 600, pack.WithSeed(42))

	fmt.Printf("%d bubbles, largest: %s\n", len(bubbles), bubbles[0].Label)
	// Output:
	// 3 bubbles, largest: Go
}

func ExampleRadius() {
	// Quadrupling the value doubles the radius, keeping area linear in value.
	fmt.Println(pack.Radius(25, 100, 80))
	fmt.Println(pack.Radius(100, 100, 80))
	// Output:
	// 40
	// 80
}
