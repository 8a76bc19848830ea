package model

import "fmt"

// Labels maps output vector indices to human-readable class names. Indices
// beyond the table get a synthetic "Class N" name.
type Labels []string

func DefaultLabels() Labels {
	return Labels{"Anger and aggression", "Anxiety", "Happy", "Sad"}
}

func (l Labels) Name(i int) string {
	if i >= 0 && i < len(l) {
		return l[i]
	}
	return fmt.Sprintf("Class %d", i)
}

// Format renders each probability as a percentage string with two decimals,
// keyed by label name.
func (l Labels) Format(probs []float32) map[string]string {
	predictions := make(map[string]string, len(probs))
	for i, prob := range probs {
		predictions[l.Name(i)] = fmt.Sprintf("%.2f%%", prob*100)
	}
	return predictions
}
