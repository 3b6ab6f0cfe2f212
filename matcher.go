package sentex

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher recognizes terminator positions in text. It is the alternation of
// all configured symbols, each matched literally. It is safe for concurrent
// use.
type Matcher struct {
	re *regexp.Regexp
}

// BuildMatcher compiles terminators into a Matcher. Symbols that collide with
// regular expression metacharacters are escaped so they match literally.
func BuildMatcher(terminators []string) (*Matcher, error) {
	if len(terminators) == 0 {
		return nil, fmt.Errorf("%w: no terminator specified", ErrInvalidConfiguration)
	}

	alts := make([]string, len(terminators))
	for i, term := range terminators {
		if term == "" {
			return nil, fmt.Errorf("%w: terminator %d is empty", ErrInvalidConfiguration, i)
		}
		alts[i] = escapeSymbol(term)
	}

	re, err := regexp.Compile(strings.Join(alts, "|"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return &Matcher{re: re}, nil
}

// escapeSymbol quotes sym only when it contains a metacharacter.
func escapeSymbol(sym string) string {
	if quoted := regexp.QuoteMeta(sym); quoted != sym {
		return quoted
	}
	return sym
}

// FindEnd returns the byte index of the first character of the earliest
// terminator in text. It reports false when text holds no terminator.
func (m *Matcher) FindEnd(text string) (int, bool) {
	start, _, ok := m.find(text)
	return start, ok
}

// find returns the byte span of the earliest terminator in text.
func (m *Matcher) find(text string) (start, end int, ok bool) {
	loc := m.re.FindStringIndex(text)
	if loc == nil {
		return -1, -1, false
	}
	return loc[0], loc[1], true
}

// String returns the compiled pattern.
func (m *Matcher) String() string {
	return m.re.String()
}
