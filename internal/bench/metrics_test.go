package bench

import (
	"testing"

	sentex "github.com/jamesainslie/go-sentex"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		tolerance int
		wantTP    int
		wantFP    int
		wantFN    int
	}{
		{
			name:      "perfect match",
			predicted: []int{10, 20, 30},
			truth:     []int{10, 20, 30},
			tolerance: 0,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "within tolerance",
			predicted: []int{11, 19, 31},
			truth:     []int{10, 20, 30},
			tolerance: 2,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "false positive",
			predicted: []int{10, 15, 20},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    2,
			wantFP:    1,
			wantFN:    0,
		},
		{
			name:      "false negative",
			predicted: []int{10},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    1,
			wantFP:    0,
			wantFN:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Tolerance: tt.tolerance}
			got := Evaluate(tt.predicted, tt.truth, cfg)

			if got.TruePositives != tt.wantTP {
				t.Errorf("TruePositives = %d, want %d", got.TruePositives, tt.wantTP)
			}
			if got.FalsePositives != tt.wantFP {
				t.Errorf("FalsePositives = %d, want %d", got.FalsePositives, tt.wantFP)
			}
			if got.FalseNegatives != tt.wantFN {
				t.Errorf("FalseNegatives = %d, want %d", got.FalseNegatives, tt.wantFN)
			}
		})
	}
}

func TestScore(t *testing.T) {
	cfg := Config{PrecisionWeight: 3, RecallWeight: 1}
	m := Score(3, 1, 3, cfg)

	if m.Precision != 0.75 {
		t.Errorf("Precision = %v, want 0.75", m.Precision)
	}
	if m.Recall != 0.5 {
		t.Errorf("Recall = %v, want 0.5", m.Recall)
	}
	if m.F1 != 0.6 {
		t.Errorf("F1 = %v, want 0.6", m.F1)
	}
	if m.WeightedScore != 0.6875 {
		t.Errorf("WeightedScore = %v, want 0.6875", m.WeightedScore)
	}

	zero := Score(0, 0, 0, Config{})
	if zero != (Metrics{}) {
		t.Errorf("Score(0, 0, 0) = %+v, want zero value", zero)
	}
}

func TestEvaluateTalk(t *testing.T) {
	ext, err := sentex.New()
	if err != nil {
		t.Fatalf("sentex.New() failed: %v", err)
	}

	talk := &Talk{
		ID:      "test",
		RawText: "Hello world. How are you?",
		Sentences: []Sentence{
			{Text: "Hello world.", Start: 0, End: 12},
			{Text: "How are you?", Start: 13, End: 25},
		},
	}

	metrics := EvaluateTalk(ext, talk, DefaultConfig())
	if metrics.TruePositives != 2 || metrics.FalsePositives != 0 || metrics.FalseNegatives != 0 {
		t.Errorf("EvaluateTalk() = %+v, want 2 TP and no errors", metrics)
	}
	if metrics.F1 != 1 {
		t.Errorf("F1 = %v, want 1", metrics.F1)
	}
}

func TestEvaluateTalk_Abbreviation(t *testing.T) {
	ext, err := sentex.New()
	if err != nil {
		t.Fatalf("sentex.New() failed: %v", err)
	}

	text := "Mr. Smith went home. He was tired"
	talk := &Talk{ID: "abbr", RawText: text, Sentences: DefaultRules().Sentences(text)}

	// "Mr." is split by the literal rule but not in the gold annotation.
	metrics := EvaluateTalk(ext, talk, Config{Tolerance: 0})
	if metrics.TruePositives != 2 {
		t.Errorf("TruePositives = %d, want 2", metrics.TruePositives)
	}
	if metrics.FalsePositives != 1 {
		t.Errorf("FalsePositives = %d, want 1", metrics.FalsePositives)
	}
}

func TestBoundaries(t *testing.T) {
	sentences := []sentex.Sentence{{Text: "One."}, {Text: " Two!"}, {Text: "?"}}
	got := Boundaries(sentences)
	want := []int{4, 9, 10}

	if len(got) != len(want) {
		t.Fatalf("got %d boundaries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("boundary[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
