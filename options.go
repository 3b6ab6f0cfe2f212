package sentex

import (
	"log/slog"

	"github.com/jamesainslie/go-sentex/symbols"
)

// Option configures an Extractor.
type Option func(*config)

type config struct {
	terminators []string
	symbols     *symbols.Table
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		symbols: symbols.Default(),
		logger:  slog.Default(),
	}
}

// resolveTerminators returns the explicit terminator set if one was given,
// otherwise the set named by the symbol table.
func (c config) resolveTerminators() []string {
	if c.terminators != nil {
		return c.terminators
	}
	return c.symbols.Terminators()
}

// WithTerminators sets the terminator symbols (default: FULL_STOP,
// QUESTION_MARK and EXCLAMATION_MARK from the symbol table).
// The first symbol becomes the primary terminator.
func WithTerminators(terms ...string) Option {
	return func(c *config) {
		c.terminators = append([]string{}, terms...)
	}
}

// WithSymbols sets the symbol table used to resolve default terminators
// (default: symbols.Default()). Ignored when WithTerminators is also given.
func WithSymbols(t *symbols.Table) Option {
	return func(c *config) {
		if t != nil {
			c.symbols = t
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
