package cursor

import "github.com/pkg/errors"

// Precondition violations. They are raised as panics: the wrapped native
// cursors treat them as caller error, and a wrong-but-plausible result is never
// returned instead.
var (
	ErrNullIterator     = errors.New("cursor: null iterator")
	ErrOutOfRange       = errors.New("cursor: position out of range")
	ErrMismatchedCursor = errors.New("cursor: mismatched cursor types")
	ErrInvalidated      = errors.New("cursor: iterator invalidated")
	ErrReadOnly         = errors.New("cursor: operation table has no set-value")
)
