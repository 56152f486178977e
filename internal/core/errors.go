package core

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable is returned by every classification call while the
// model or vectorizer artifacts are missing or failed to load. The service
// stays up in this degraded state; only a restart with valid artifacts
// clears it.
var ErrModelUnavailable = errors.New("classification model unavailable")

// MalformedInputError reports batch input that could not be parsed as
// tabular data. No partial summary accompanies it.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed batch input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// NewMalformedInputError wraps the underlying parse error
func NewMalformedInputError(err error) *MalformedInputError {
	return &MalformedInputError{Err: err}
}
