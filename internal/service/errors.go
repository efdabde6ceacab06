package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidStatus rejects a status string outside the enum before
	// any store call is made.
	ErrInvalidStatus = errors.New("invalid job status")
)

// ValidationError reports every required or conditional field missing
// from a submission. It is produced before any store call.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// TransitionError is reserved for restricted-transition rules. Every
// transition is currently permitted, so nothing returns it yet.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition from %q to %q is not allowed", e.From, e.To)
}
