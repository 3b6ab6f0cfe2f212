package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	sentex "github.com/jamesainslie/go-sentex"
	"github.com/jamesainslie/go-sentex/internal/bench"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/ted", "Directory containing transcript files")
		sets      = flag.String("sets", ".?!", "Terminator sets to compare, separated by |")
		gold      = flag.String("gold", "", "Terminators for gold annotation of .txt transcripts (default: .?! with abbreviation handling)")
		tolerance = flag.Int("tolerance", 3, "Character tolerance for boundary matching")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
	)
	flag.Parse()

	terminatorSets := bench.ParseSets(*sets)
	if len(terminatorSets) == 0 {
		fmt.Fprintln(os.Stderr, "error: -sets must name at least one terminator")
		flag.Usage()
		os.Exit(1)
	}

	rules := bench.DefaultRules()
	if *gold != "" {
		rules.Terminators = nil
		for _, r := range *gold {
			rules.Terminators = append(rules.Terminators, string(r))
		}
	}

	// Load corpus
	talks, err := bench.LoadCorpus(*corpusDir, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d talks from %s\n\n", len(talks), *corpusDir)

	cfg := bench.Config{
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	if len(terminatorSets) == 1 {
		runSingle(talks, terminatorSets[0], cfg)
		return
	}
	runSweep(talks, terminatorSets, cfg)
}

func runSingle(talks []*bench.Talk, set []string, cfg bench.Config) {
	ext, err := sentex.New(sentex.WithTerminators(set...))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating extractor: %v\n", err)
		os.Exit(1)
	}

	var total bench.Metrics
	for _, talk := range talks {
		total.Add(bench.EvaluateTalk(ext, talk, cfg))
	}

	m := bench.Score(total.TruePositives, total.FalsePositives, total.FalseNegatives, cfg)
	fmt.Printf("Terminators: %q\n", set)
	fmt.Printf("Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}

func runSweep(talks []*bench.Talk, sets [][]string, cfg bench.Config) {
	results, err := bench.Sweep(talks, sets, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Terminator Sweep Results (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-12s %-8s %-8s %-8s %-8s\n", "Set", "Prec", "Rec", "F1", "Weighted")
	for _, r := range results {
		fmt.Printf("%-12s %-8.2f %-8.2f %-8.2f %-8.2f\n",
			strings.Join(r.Terminators, ""), r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore)
	}
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Best: %s (Weighted: %.2f)\n", strings.Join(results[0].Terminators, ""), results[0].Metrics.WeightedScore)
}
