package bench

import (
	"fmt"
	"sort"
	"strings"

	sentex "github.com/jamesainslie/go-sentex"
)

// SweepResult holds metrics for one terminator set.
type SweepResult struct {
	Terminators []string
	Metrics     Metrics
}

// ParseSets parses terminator sets written as "|"-separated groups of
// single-character terminators, e.g. ".?!|." yields {".", "?", "!"} and {"."}.
func ParseSets(spec string) [][]string {
	var sets [][]string
	for _, group := range strings.Split(spec, "|") {
		var set []string
		for _, r := range group {
			set = append(set, string(r))
		}
		if len(set) > 0 {
			sets = append(sets, set)
		}
	}
	return sets
}

// Sweep evaluates each terminator set over all talks and returns results
// sorted by weighted score, best first.
func Sweep(talks []*Talk, sets [][]string, cfg Config) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(sets))

	for _, set := range sets {
		ext, err := sentex.New(sentex.WithTerminators(set...))
		if err != nil {
			return nil, fmt.Errorf("terminator set %q: %w", strings.Join(set, ""), err)
		}

		// Aggregate counts across all talks
		var total Metrics
		for _, talk := range talks {
			total.Add(EvaluateTalk(ext, talk, cfg))
		}

		results = append(results, SweepResult{
			Terminators: set,
			Metrics:     Score(total.TruePositives, total.FalsePositives, total.FalseNegatives, cfg),
		})
	}

	// Sort by weighted score descending
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
