package pack

import (
	"math"
	"testing"
)

func TestRadius(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		maxValue  float64
		maxRadius float64
		want      float64
	}{
		{"max value gets max radius", 100, 100, 80, 80},
		{"quarter value gets half radius", 25, 100, 80, 40},
		{"zero value gets floor", 0, 100, 80, MinRadius},
		{"zero max value gets floor", 50, 0, 80, MinRadius},
		{"tiny value gets floor", 0.001, 100, 80, MinRadius},
		{"floor wins over scaled radius", 1, 100, 50, MinRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Radius(tt.value, tt.maxValue, tt.maxRadius)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Radius(%v, %v, %v) = %v, want %v", tt.value, tt.maxValue, tt.maxRadius, got, tt.want)
			}
		})
	}
}

func TestRadiusFloorInvariant(t *testing.T) {
	// Regardless of inputs, the radius never drops below the floor.
	for _, value := range []float64{0, 0.5, 1, 10, 1e6} {
		for _, maxValue := range []float64{0, 1, 1e6} {
			for _, maxRadius := range []float64{0, 5, 100} {
				if r := Radius(value, maxValue, maxRadius); r < MinRadius {
					t.Errorf("Radius(%v, %v, %v) = %v, below floor", value, maxValue, maxRadius, r)
				}
			}
		}
	}
}
