// Package bench scores terminator-based sentence extraction against
// transcripts annotated with gold sentence boundaries.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-sentex/symbols"
)

var errMissingSource = errors.New("missing Source in header")

// Header holds the "# Key: value" metadata at the top of a transcript.
type Header struct {
	Source  string
	Speaker string
	Title   string
}

// ParseHeader splits a transcript into its header and body. The header ends
// at the first non-blank line that does not start with '#'. Source is
// required.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	rest := text

	for rest != "" {
		line, after, _ := strings.Cut(rest, "\n")
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			break
		}
		rest = after

		key, value, ok := strings.Cut(strings.TrimPrefix(trimmed, "#"), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Source":
			h.Source = value
		case "Speaker":
			h.Speaker = value
		case "Title":
			h.Title = value
		}
	}

	if h.Source == "" {
		return Header{}, "", errMissingSource
	}
	return h, strings.TrimSpace(rest), nil
}

// Sentence is a gold sentence with byte offsets into the talk body.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Rules decide where gold sentences end in a plain transcript.
type Rules struct {
	// Terminators end a sentence. Longer symbols are tried first.
	Terminators []string

	// RequireSpace makes a terminator count only when followed by
	// whitespace or the end of text.
	RequireSpace bool

	// Abbreviations, when set, is matched against the candidate sentence;
	// a match means the terminator belongs to an abbreviation.
	Abbreviations *regexp.Regexp
}

var englishAbbreviations = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr|vs|etc|i\.e|e\.g|U\.S|U\.K)\.$`)

// DefaultRules annotates English transcripts: the default symbol table
// terminators, followed by whitespace, excluding common abbreviations.
func DefaultRules() Rules {
	return Rules{
		Terminators:   symbols.Default().Terminators(),
		RequireSpace:  true,
		Abbreviations: englishAbbreviations,
	}
}

// Sentences annotates text. Text after the last boundary becomes a final
// sentence when it is not blank.
func (r Rules) Sentences(text string) []Sentence {
	var sentences []Sentence
	start := 0

	for i := 0; i < len(text); {
		term := r.terminatorAt(text, i)
		if term == "" {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}

		end := i + len(term)
		i = end
		if r.RequireSpace && !spaceOrEnd(text, end) {
			continue
		}
		if r.Abbreviations != nil && r.Abbreviations.MatchString(text[start:end]) {
			continue
		}

		sentences = append(sentences, Sentence{
			Text:  strings.TrimSpace(text[start:end]),
			Start: start,
			End:   end,
		})

		i = skipSpace(text, end)
		start = i
	}

	if remaining := strings.TrimSpace(text[start:]); remaining != "" {
		sentences = append(sentences, Sentence{Text: remaining, Start: start, End: len(text)})
	}
	return sentences
}

// terminatorAt returns the longest terminator starting at text[i:], or "".
func (r Rules) terminatorAt(text string, i int) string {
	var best string
	for _, term := range r.Terminators {
		if term != "" && len(term) > len(best) && strings.HasPrefix(text[i:], term) {
			best = term
		}
	}
	return best
}

func spaceOrEnd(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r)
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// Talk is one evaluation document: a body text and its gold sentences.
type Talk struct {
	ID        string // filename without extension
	Source    string
	Speaker   string
	Title     string
	RawText   string
	Sentences []Sentence
}

// LoadTalk loads a transcript and annotates its body with rules.
func LoadTalk(path string, rules Rules) (*Talk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	return &Talk{
		ID:        fileID(path),
		Source:    header.Source,
		Speaker:   header.Speaker,
		Title:     header.Title,
		RawText:   body,
		Sentences: rules.Sentences(body),
	}, nil
}

func fileID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadCorpus loads every .txt transcript and .conllu treebank in dir, in
// directory order. Transcripts are annotated with rules; treebanks carry
// their own sentence split. Other files are ignored.
func LoadCorpus(dir string, rules Rules) ([]*Talk, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var talks []*Talk
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		var (
			talk *Talk
			err  error
		)
		switch filepath.Ext(entry.Name()) {
		case ".txt":
			talk, err = LoadTalk(path, rules)
		case ".conllu":
			talk, err = LoadCoNLLU(path)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		talks = append(talks, talk)
	}

	return talks, nil
}
