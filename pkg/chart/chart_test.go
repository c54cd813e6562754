package chart

import (
	"path/filepath"
	"testing"

	"github.com/packviz/packviz/pkg/errors"
)

func TestDatasetValidate(t *testing.T) {
	tests := []struct {
		name     string
		dataset  Dataset
		wantCode errors.Code
	}{
		{
			name:    "valid",
			dataset: Dataset{Items: []Item{{ID: "a", Value: 1}, {ID: "b", Value: 0}}},
		},
		{
			name:    "empty",
			dataset: Dataset{},
		},
		{
			name:     "missing id",
			dataset:  Dataset{Items: []Item{{Value: 1}}},
			wantCode: errors.ErrCodeInvalidItem,
		},
		{
			name:     "duplicate id",
			dataset:  Dataset{Items: []Item{{ID: "a", Value: 1}, {ID: "a", Value: 2}}},
			wantCode: errors.ErrCodeInvalidDataset,
		},
		{
			name:     "negative value",
			dataset:  Dataset{Items: []Item{{ID: "a", Value: -1}}},
			wantCode: errors.ErrCodeInvalidItem,
		},
		{
			name:     "unknown scheme",
			dataset:  Dataset{Scheme: "neon", Items: []Item{{ID: "a", Value: 1}}},
			wantCode: errors.ErrCodeInvalidScheme,
		},
		{
			name:    "known scheme",
			dataset: Dataset{Scheme: "pastel", Items: []Item{{ID: "a", Value: 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dataset.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestItemDisplayLabel(t *testing.T) {
	labeled := Item{ID: "go", Label: "Go"}
	if got := labeled.DisplayLabel(); got != "Go" {
		t.Errorf("DisplayLabel() = %q, want Go", got)
	}
	bare := Item{ID: "go"}
	if got := bare.DisplayLabel(); got != "go" {
		t.Errorf("DisplayLabel() = %q, want go", got)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := Layout{
		VizType: VizTypePack,
		Width:   600,
		Height:  400,
		Style:   StyleFlat,
		Padding: 3,
		Seed:    42,
		Legend:  []LegendEntry{{Group: "g", Color: "#abc"}},
		Bubbles: []Bubble{
			{ID: "a", Label: "A", Value: 10, Group: "g", Color: "#abc", X: 300, Y: 200, R: 50},
		},
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}

	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if got.VizType != VizTypePack || len(got.Bubbles) != 1 || got.Bubbles[0].X != 300 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestUnmarshalLayoutDefaultsAndErrors(t *testing.T) {
	l, err := UnmarshalLayout([]byte(`{"width": 10, "height": 10}`))
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if !l.IsPack() {
		t.Errorf("viz type should default to pack, got %q", l.VizType)
	}

	if _, err := UnmarshalLayout([]byte(`{"viz_type": "graph"}`)); err == nil {
		t.Error("graph layout without DOT should fail")
	}
	if _, err := UnmarshalLayout([]byte(`not json`)); err == nil {
		t.Error("malformed JSON should fail")
	}
}
