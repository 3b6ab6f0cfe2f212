package bench

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	sentex "github.com/jamesainslie/go-sentex"
)

func TestParseSets(t *testing.T) {
	got := ParseSets(".?!|.||。！")
	want := [][]string{{".", "?", "!"}, {"."}, {"。", "！"}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSets() mismatch (-want +got):\n%s", diff)
	}
}

func TestSweep(t *testing.T) {
	text := "Hello world. How are you? Fine!"
	talks := []*Talk{{ID: "t", RawText: text, Sentences: DefaultRules().Sentences(text)}}

	results, err := Sweep(talks, [][]string{{"."}, {".", "?", "!"}}, Config{Tolerance: 0, PrecisionWeight: 1, RecallWeight: 1})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	best := results[0]
	if diff := cmp.Diff([]string{".", "?", "!"}, best.Terminators); diff != "" {
		t.Errorf("best set mismatch (-want +got):\n%s", diff)
	}
	if best.Metrics.F1 != 1 {
		t.Errorf("best F1 = %v, want 1", best.Metrics.F1)
	}
	if results[1].Metrics.WeightedScore >= best.Metrics.WeightedScore {
		t.Errorf("results not sorted: %+v", results)
	}
}

func TestSweep_InvalidSet(t *testing.T) {
	_, err := Sweep(nil, [][]string{{}}, DefaultConfig())
	if !errors.Is(err, sentex.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got: %v", err)
	}
}
