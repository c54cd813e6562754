package groupdot

import (
	"strings"
	"testing"

	"github.com/packviz/packviz/pkg/chart"
)

func testDataset() chart.Dataset {
	return chart.Dataset{
		Title: "Languages",
		Items: []chart.Item{
			{ID: "go", Label: "Go", Value: 100, Group: "backend"},
			{ID: "rust", Value: 40, Group: "backend"},
			{ID: "js", Label: "JavaScript", Value: 60, Group: "frontend"},
			{ID: "misc", Value: 10},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testDataset(), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("DOT should be an undirected graph")
	}
	if !strings.Contains(dot, `"group:backend"`) || !strings.Contains(dot, `"group:frontend"`) {
		t.Error("DOT missing group hub nodes")
	}
	if !strings.Contains(dot, `"group:backend" -- "go"`) {
		t.Error("DOT missing membership edge")
	}
	if !strings.Contains(dot, `"misc"`) {
		t.Error("ungrouped item should still appear as a node")
	}
	if strings.Contains(dot, `-- "misc"`) {
		t.Error("ungrouped item should have no edges")
	}
}

func TestToDOTLabels(t *testing.T) {
	dot := ToDOT(testDataset(), Options{})

	// DisplayLabel falls back to the ID when Label is empty
	if !strings.Contains(dot, `label="Go"`) {
		t.Error("DOT should use explicit labels")
	}
	if !strings.Contains(dot, `label="rust"`) {
		t.Error("DOT should fall back to item ID")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testDataset(), Options{Detailed: true})

	if !strings.Contains(dot, "value: 100") {
		t.Error("detailed labels should include the value")
	}
	if !strings.Contains(dot, "group: backend") {
		t.Error("detailed labels should include the group")
	}
}

func TestToDOTColors(t *testing.T) {
	ds := testDataset()
	legend := chart.GroupColors(ds.Items, chart.Scheme(chart.DefaultScheme))
	dot := ToDOT(ds, Options{})

	for _, e := range legend {
		if !strings.Contains(dot, e.Color) {
			t.Errorf("DOT missing scheme color %s for group %s", e.Color, e.Group)
		}
	}
}

func TestNodeWidth(t *testing.T) {
	tests := []struct {
		name            string
		value, maxValue float64
		want            float64
	}{
		{"max value", 100, 100, maxNodeWidth},
		{"quarter value is half width", 25, 100, maxNodeWidth / 2},
		{"zero value floors", 0, 100, minNodeWidth},
		{"zero max floors", 50, 0, minNodeWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nodeWidth(tt.value, tt.maxValue); got != tt.want {
				t.Errorf("nodeWidth(%v, %v) = %v, want %v", tt.value, tt.maxValue, got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="108pt" height="176pt" viewBox="0.00 0.00 108.00 176.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)

	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 108.00 176.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="108" height="176"`) {
		t.Errorf("pixel dimensions not set: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg><g/></svg>")
	if got := string(normalizeViewBox(in)); got != "<svg><g/></svg>" {
		t.Errorf("unmatched input should pass through: %s", got)
	}
}
