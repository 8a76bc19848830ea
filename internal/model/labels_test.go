package model

import (
	"strconv"
	"strings"
	"testing"
)

func TestLabelsName(t *testing.T) {
	labels := DefaultLabels()

	cases := []struct {
		index int
		want  string
	}{
		{0, "Anger and aggression"},
		{1, "Anxiety"},
		{2, "Happy"},
		{3, "Sad"},
		{4, "Class 4"},
		{7, "Class 7"},
	}

	for _, c := range cases {
		if got := labels.Name(c.index); got != c.want {
			t.Errorf("Name(%d) = %q, want %q", c.index, got, c.want)
		}
	}
}

func TestLabelsFormat(t *testing.T) {
	labels := DefaultLabels()

	predictions := labels.Format([]float32{0.01, 0.02, 0.95, 0.02})

	want := map[string]string{
		"Anger and aggression": "1.00%",
		"Anxiety":              "2.00%",
		"Happy":                "95.00%",
		"Sad":                  "2.00%",
	}

	if len(predictions) != len(want) {
		t.Fatalf("Expected %d predictions, got %d", len(want), len(predictions))
	}
	for label, pct := range want {
		if predictions[label] != pct {
			t.Errorf("Format()[%q] = %q, want %q", label, predictions[label], pct)
		}
	}
}

func TestLabelsFormatExtraIndices(t *testing.T) {
	labels := DefaultLabels()

	predictions := labels.Format([]float32{0.2, 0.2, 0.2, 0.2, 0.2})

	if predictions["Class 4"] != "20.00%" {
		t.Errorf("Expected synthetic label Class 4 = 20.00%%, got %q", predictions["Class 4"])
	}
}

func TestLabelsFormatSumsToHundred(t *testing.T) {
	labels := DefaultLabels()

	predictions := labels.Format([]float32{0.1, 0.25, 0.4, 0.25})

	var sum float64
	for label, pct := range predictions {
		value, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64)
		if err != nil {
			t.Fatalf("Failed to parse percentage %q for %q: %v", pct, label, err)
		}
		sum += value
	}

	if sum < 99.9 || sum > 100.1 {
		t.Errorf("Expected percentages to sum to ~100, got %.2f", sum)
	}
}
