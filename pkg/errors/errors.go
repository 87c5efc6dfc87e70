package errors

import (
	"fmt"
	"strings"
)

// ErrValidation reports malformed or out-of-range input. Details carries
// every violated rule, not just the first one.
type ErrValidation struct {
	Details []string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Details, "; "))
}

// ErrConflict reports a duplicate operation, e.g. a newsletter signup for an
// email that is already subscribed.
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// ErrUpstream reports a failed call to an external dependency. The caller
// may retry later; this system never retries internally.
type ErrUpstream struct {
	Service string
	Err     error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}
