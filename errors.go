// File: csvio/errors.go
package csvio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDelimiter reports that the field or row delimiter is empty.
	ErrEmptyDelimiter = errors.New("field and row delimiters must be non-empty")

	// ErrConfigNotFound reports that the configuration file does not exist.
	// Callers may treat this as non-fatal and proceed with defaults.
	ErrConfigNotFound = errors.New("configuration file not found")

	errNilWriter      = errors.New("csvio: writer is nil")
	errNilDestination = errors.New("csvio: destination cannot be nil")
)

// IdenticalDelimitersError reports that the field and row delimiters are the
// same scalar sequence, which would make output unparseable.
type IdenticalDelimitersError struct {
	// Delimiter is the value shared by both delimiters.
	Delimiter string
}

func (e *IdenticalDelimitersError) Error() string {
	return fmt.Sprintf("field and row delimiters are both %q", e.Delimiter)
}

// EncodingConflictError reports that the configured encoding and the
// destination's encoding disagree. The conflict is never resolved silently:
// writing with either one could corrupt the destination for readers
// expecting the other.
type EncodingConflictError struct {
	// Configured is the encoding requested in the Configuration.
	Configured Encoding
	// Hint is the encoding already fixed by the destination.
	Hint Encoding
}

func (e *EncodingConflictError) Error() string {
	return fmt.Sprintf("configured encoding %s conflicts with destination encoding %s",
		e.Configured, e.Hint)
}
