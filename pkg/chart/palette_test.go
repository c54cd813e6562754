package chart

import (
	"reflect"
	"testing"
)

func TestGroupColorsFirstSeenOrder(t *testing.T) {
	items := []Item{
		{ID: "1", Group: "backend"},
		{ID: "2", Group: "frontend"},
		{ID: "3", Group: "backend"},
		{ID: "4"},
		{ID: "5", Group: "infra"},
	}
	scheme := []string{"#a", "#b", "#c"}

	legend := GroupColors(items, scheme)

	want := []LegendEntry{
		{Group: "backend", Color: "#a"},
		{Group: "frontend", Color: "#b"},
		{Group: "infra", Color: "#c"},
	}
	if !reflect.DeepEqual(legend, want) {
		t.Errorf("GroupColors() = %v, want %v", legend, want)
	}
}

func TestGroupColorsCyclesScheme(t *testing.T) {
	items := []Item{
		{ID: "1", Group: "a"},
		{ID: "2", Group: "b"},
		{ID: "3", Group: "c"},
	}
	scheme := []string{"#x", "#y"}

	legend := GroupColors(items, scheme)

	if got := legend[2].Color; got != "#x" {
		t.Errorf("third group color = %q, want cycled %q", got, "#x")
	}
}

func TestGroupColorsDeterministic(t *testing.T) {
	items := []Item{
		{ID: "1", Group: "g1"},
		{ID: "2", Group: "g2"},
		{ID: "3", Group: "g3"},
		{ID: "4", Group: "g1"},
	}

	first := GroupColors(items, Scheme(DefaultScheme))
	for range 10 {
		if again := GroupColors(items, Scheme(DefaultScheme)); !reflect.DeepEqual(first, again) {
			t.Fatalf("repeated resolution differs: %v vs %v", first, again)
		}
	}
}

func TestItemColor(t *testing.T) {
	legend := []LegendEntry{{Group: "backend", Color: "#b"}}
	scheme := []string{"#first", "#second"}

	tests := []struct {
		name string
		item Item
		want string
	}{
		{"explicit color wins", Item{ID: "1", Group: "backend", Color: "#own"}, "#own"},
		{"group color", Item{ID: "2", Group: "backend"}, "#b"},
		{"no group no color", Item{ID: "3"}, "#first"},
		{"unknown group falls back", Item{ID: "4", Group: "other"}, "#first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ItemColor(tt.item, legend, scheme); got != tt.want {
				t.Errorf("ItemColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSchemeNames(t *testing.T) {
	names := SchemeNames()
	if len(names) == 0 {
		t.Fatal("no schemes registered")
	}
	for _, name := range names {
		if len(Scheme(name)) == 0 {
			t.Errorf("scheme %q is empty", name)
		}
	}
	if Scheme("nope") != nil {
		t.Error("unknown scheme should return nil")
	}
}
