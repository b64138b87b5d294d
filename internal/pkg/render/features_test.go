package render

import (
	"reflect"
	"testing"
)

func TestFeatureList(t *testing.T) {
	got := FeatureList("AC, Bluetooth, , Sunroof")
	want := []string{"AC", "Bluetooth", "Sunroof"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FeatureList = %v, want %v", got, want)
	}
}

func TestFeatureListEmpty(t *testing.T) {
	if got := FeatureList(""); len(got) != 0 {
		t.Fatalf("expected no tokens for empty input, got %v", got)
	}
	if got := FeatureList(" , ,, "); len(got) != 0 {
		t.Fatalf("expected no tokens for blank input, got %v", got)
	}
}

func TestFeaturesDisplay(t *testing.T) {
	if got := FeaturesDisplay(""); got != NoFeaturesMessage {
		t.Fatalf("FeaturesDisplay(\"\") = %q, want placeholder", got)
	}
	if got := FeaturesDisplay("AC"); got != "" {
		t.Fatalf("expected empty display for non-empty features, got %q", got)
	}
}
