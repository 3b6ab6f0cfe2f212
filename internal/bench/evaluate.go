package bench

import (
	sentex "github.com/jamesainslie/go-sentex"
)

// Boundaries returns the end offset of each sentence, assuming the sentences
// were extracted back to back from one text.
func Boundaries(sentences []sentex.Sentence) []int {
	boundaries := make([]int, len(sentences))
	offset := 0
	for i, s := range sentences {
		offset += len(s.Text)
		boundaries[i] = offset
	}
	return boundaries
}

// EvaluateTalk extracts sentences from a talk and scores the boundaries
// against the talk's gold sentences. Text after the last terminator counts as
// a final sentence, as it does in the gold annotation.
func EvaluateTalk(ext *sentex.Extractor, talk *Talk, cfg Config) Metrics {
	sentences, rest := ext.Extract(talk.RawText, nil)
	predicted := Boundaries(sentences)
	if rest != "" {
		predicted = append(predicted, len(talk.RawText))
	}

	truth := make([]int, len(talk.Sentences))
	for i, s := range talk.Sentences {
		truth[i] = s.End
	}

	return Evaluate(predicted, truth, cfg)
}
