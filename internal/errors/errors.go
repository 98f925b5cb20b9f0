package gerr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks client input that cannot be served.
	ErrValidation = errors.New("validation")
	// ErrNoShop is returned when the caller has no shop linked.
	ErrNoShop = fmt.Errorf("%w: no shop linked to the authenticated user", ErrValidation)
	// ErrUnauthenticated is returned when the caller identity can't be established.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Validation wraps ErrValidation with a descriptive message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// Message returns the client facing text of a validation error, without the
// taxonomy prefix.
func Message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
}
