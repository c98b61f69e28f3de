package advisor

import (
	"github.com/pkg/errors"
)

// ErrNotConfigured is the cause of the error returned when no API key is configured.
var ErrNotConfigured = errors.New("advisor: API key is not configured")

// UnavailableError is the only error returned by Client.Advise.
//
// Message is localized and safe to display to the end user. Cause holds the technical
// failure, it is logged but never part of Error().
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string { return e.Message }
func (e *UnavailableError) Unwrap() error { return e.Cause }

// IsNotConfigured reports whether err comes from a missing API key.
func IsNotConfigured(err error) bool { return errors.Is(err, ErrNotConfigured) }
