// Package stats computes summary values over score lists.
package stats

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nibzard/kanban-go/internal/utils"
)

// Mean returns the arithmetic mean of scores, or 0 for an empty list.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// ParseScores parses numbers separated by commas, semicolons or whitespace.
// NaN and infinities are rejected.
func ParseScores(args ...string) ([]float64, error) {
	var scores []float64
	for _, arg := range args {
		for _, field := range utils.SplitList(arg) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid score %q: %w", field, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("invalid score %q: not a finite number", field)
			}
			scores = append(scores, v)
		}
	}
	return scores, nil
}

// FormatScores renders scores the way the CLI prints them: [12, 15, 18].
func FormatScores(scores []float64) string {
	b := []byte{'['}
	for i, s := range scores {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendFloat(b, s, 'f', -1, 64)
	}
	return string(append(b, ']'))
}

// SampleScores returns the scores `kanban mean` uses when given none.
func SampleScores() []float64 {
	return []float64{12, 15, 18, 10, 14}
}

// FormatMean renders a mean with the shortest exact decimal form.
func FormatMean(mean float64) string {
	return strconv.FormatFloat(mean, 'f', -1, 64)
}
