package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const conlluText = "# text = "

// ParseCoNLLU builds a gold annotation from a CoNLL-U treebank. The "# text"
// comment of every sentence block is joined with single spaces to form the
// body, and each block becomes one gold sentence.
func ParseCoNLLU(r io.Reader) (string, []Sentence, error) {
	var (
		texts   []string
		current string
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if value, ok := strings.CutPrefix(line, conlluText); ok {
			current = value
			continue
		}

		// Blank line = end of sentence block
		if strings.TrimSpace(line) == "" && current != "" {
			texts = append(texts, current)
			current = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("scan treebank: %w", err)
	}
	if current != "" {
		texts = append(texts, current)
	}

	var body strings.Builder
	sentences := make([]Sentence, 0, len(texts))
	for i, text := range texts {
		if i > 0 {
			body.WriteByte(' ')
		}
		start := body.Len()
		body.WriteString(text)
		sentences = append(sentences, Sentence{Text: text, Start: start, End: body.Len()})
	}

	return body.String(), sentences, nil
}

// LoadCoNLLU loads a CoNLL-U treebank file as a talk.
func LoadCoNLLU(path string) (*Talk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open treebank: %w", err)
	}
	defer func() { _ = f.Close() }()

	body, sentences, err := ParseCoNLLU(f)
	if err != nil {
		return nil, err
	}

	return &Talk{
		ID:        fileID(path),
		Source:    path,
		RawText:   body,
		Sentences: sentences,
	}, nil
}
