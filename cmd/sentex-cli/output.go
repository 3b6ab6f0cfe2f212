package main

import (
	"fmt"
	"io"
	"strings"

	sentex "github.com/jamesainslie/go-sentex"
	"github.com/jamesainslie/go-sentex/internal/wire"
)

// remainderPosition tags the unterminated remainder in proto output.
const remainderPosition = -1

// parseTerminators splits the -terminators flag on commas, dropping empty
// entries. A comma can therefore never be a terminator here.
func parseTerminators(s string) []string {
	var terms []string
	for _, t := range strings.Split(s, ",") {
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// writeOutput renders sentences and the remainder in the requested format.
func writeOutput(w io.Writer, format string, sentences []sentex.Sentence, rest string) error {
	switch format {
	case "text":
		if _, err := fmt.Fprintf(w, "Sentences (%d):\n", len(sentences)); err != nil {
			return err
		}
		for i, s := range sentences {
			if _, err := fmt.Fprintf(w, "  %d [%d]: %q\n", i+1, s.Position, s.Text); err != nil {
				return err
			}
		}
		if rest != "" {
			if _, err := fmt.Fprintf(w, "Remainder: %q\n", rest); err != nil {
				return err
			}
		}
		return nil

	case "proto":
		b := wire.Marshal(sentences)
		if rest != "" {
			b = wire.AppendSentence(b, sentex.Sentence{Text: rest, Position: remainderPosition})
		}
		_, err := w.Write(b)
		return err

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
