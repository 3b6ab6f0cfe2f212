package sentex

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidConfiguration indicates the terminator set is empty or
	// contains an empty symbol.
	ErrInvalidConfiguration = errors.New("sentex: invalid terminator configuration")
)
