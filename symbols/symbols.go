// Package symbols provides the named punctuation table used to configure
// sentence terminators.
package symbols

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"
)

// Symbol names.
const (
	FullStop           = "FULL_STOP"
	QuestionMark       = "QUESTION_MARK"
	ExclamationMark    = "EXCLAMATION_MARK"
	Comma              = "COMMA"
	Colon              = "COLON"
	Semicolon          = "SEMICOLON"
	LeftQuotationMark  = "LEFT_QUOTATION_MARK"
	RightQuotationMark = "RIGHT_QUOTATION_MARK"
)

// ErrInvalidSymbol indicates a symbol definition with an unknown name or an
// empty value.
var ErrInvalidSymbol = errors.New("symbols: invalid symbol")

var defaults = map[string]string{
	FullStop:           ".",
	QuestionMark:       "?",
	ExclamationMark:    "!",
	Comma:              ",",
	Colon:              ":",
	Semicolon:          ";",
	LeftQuotationMark:  `"`,
	RightQuotationMark: `"`,
}

// Table maps symbol names to their values. A Table is read-only once built.
type Table struct {
	values map[string]string
}

// Default returns a table holding the ASCII defaults.
func Default() *Table {
	values := make(map[string]string, len(defaults))
	for k, v := range defaults {
		values[k] = v
	}
	return &Table{values: values}
}

type file struct {
	Symbols map[string]string `toml:"symbols"`
}

// Parse reads a TOML document with a [symbols] table and overlays its
// entries on the defaults. Values are NFC-normalized.
//
//	[symbols]
//	FULL_STOP = "。"
//	QUESTION_MARK = "？"
func Parse(data []byte) (*Table, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing symbols: %w", err)
	}

	t := Default()
	names := make([]string, 0, len(f.Symbols))
	for name := range f.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := defaults[name]; !ok {
			return nil, fmt.Errorf("%w: unknown name %q", ErrInvalidSymbol, name)
		}
		value := norm.NFC.String(f.Symbols[name])
		if value == "" {
			return nil, fmt.Errorf("%w: %s has an empty value", ErrInvalidSymbol, name)
		}
		t.values[name] = value
	}
	return t, nil
}

// Load reads and parses a TOML symbol file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading symbol file: %w", err)
	}
	return Parse(data)
}

// Get returns the value of the named symbol.
func (t *Table) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Terminators returns the sentence terminators in canonical order:
// full stop, question mark, exclamation mark.
func (t *Table) Terminators() []string {
	return []string{
		t.values[FullStop],
		t.values[QuestionMark],
		t.values[ExclamationMark],
	}
}
