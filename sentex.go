package sentex

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentence is a piece of text ending with a terminator, tagged with the
// position it came from (for example a line number).
type Sentence struct {
	Text     string
	Position int
}

// Extractor splits text into sentences at terminator symbols.
// It is safe for concurrent use.
type Extractor struct {
	terminators []string
	matcher     *Matcher
	logger      *slog.Logger
}

// New creates an Extractor. Without options it splits on the FULL_STOP,
// QUESTION_MARK and EXCLAMATION_MARK symbols of symbols.Default().
func New(opts ...Option) (*Extractor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	terms := cfg.resolveTerminators()
	m, err := BuildMatcher(terms)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("sentence extractor ready",
		slog.Any("terminators", terms),
		slog.String("pattern", m.String()))

	return &Extractor{
		terminators: append([]string{}, terms...),
		matcher:     m,
		logger:      cfg.logger,
	}, nil
}

// Extract appends every terminated sentence in text to dst and returns the
// extended slice together with the text following the last terminator.
// Sentences are tagged with position 0.
func (e *Extractor) Extract(text string, dst []Sentence) ([]Sentence, string) {
	return e.extract(text, dst, 0, false)
}

// ExtractWithoutLast is like Extract but withholds the final sentence when its
// terminator is the last character of text, because more input may continue
// it. The withheld sentence is returned as part of the remainder. Sentences
// are tagged with position.
//
// A terminator at the end of a chunk is only a guess at an unfinished
// sentence; callers must re-feed the remainder with the next chunk.
func (e *Extractor) ExtractWithoutLast(text string, dst []Sentence, position int) ([]Sentence, string) {
	return e.extract(text, dst, position, true)
}

func (e *Extractor) extract(text string, dst []Sentence, position int, withholdLast bool) ([]Sentence, string) {
	for {
		_, end, ok := e.matcher.find(text)
		if !ok {
			return dst, text
		}
		if withholdLast && end == len(text) {
			return dst, text
		}
		dst = append(dst, Sentence{Text: text[:end], Position: position})
		text = text[end:]
	}
}

// EndPosition returns the byte index of the first terminator in text, or
// false if there is none.
func (e *Extractor) EndPosition(text string) (int, bool) {
	return e.matcher.FindEnd(text)
}

// PrimaryTerminator returns the first configured terminator.
func (e *Extractor) PrimaryTerminator() string {
	return e.terminators[0]
}

// Terminators returns a copy of the configured terminators in order.
func (e *Extractor) Terminators() []string {
	return append([]string{}, e.terminators...)
}

// Matcher returns the compiled terminator matcher.
func (e *Extractor) Matcher() *Matcher {
	return e.matcher
}

// ExtractLines reads r line by line and returns the sentences it contains,
// each tagged with the 1-based line number where it was completed.
//
// Line breaks inside a sentence become a single space. A blank line ends the
// paragraph: pending text is flushed as a sentence even without a terminator.
// The same happens at end of input.
func (e *Extractor) ExtractLines(ctx context.Context, r io.Reader) ([]Sentence, error) {
	var (
		sentences []Sentence
		pending   string
		lineNo    int
		lastLine  int
	)

	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading line %d: %w", lineNo+1, err)
		}
		if raw == "" {
			break
		}

		lineNo++
		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) == "" {
			sentences, pending = e.flush(pending, sentences, lastLine)
		} else {
			lastLine = lineNo
			if pending != "" {
				line = strings.TrimRight(pending, " \t") + " " + line
			}
			sentences, pending = e.ExtractWithoutLast(line, sentences, lineNo)
		}

		if err != nil {
			break
		}
	}

	sentences, _ = e.flush(pending, sentences, lastLine)
	return sentences, nil
}

// flush emits everything in pending, including a trailing unterminated
// fragment, and returns an empty remainder.
func (e *Extractor) flush(pending string, dst []Sentence, position int) ([]Sentence, string) {
	if pending == "" {
		return dst, ""
	}

	before := len(dst)
	dst, rest := e.extract(pending, dst, position, false)
	if strings.TrimSpace(rest) != "" {
		dst = append(dst, Sentence{Text: rest, Position: position})
	}

	e.logger.Debug("flushed paragraph",
		slog.Int("line", position),
		slog.Int("sentences", len(dst)-before))
	return dst, ""
}
