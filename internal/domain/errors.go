package domain

import (
	"errors"
	"fmt"
)

// Business-rule refusals. These are ordinary outcomes of well-formed
// requests whose preconditions were not met; callers match them with
// errors.Is and report them as negative results, not failures.
var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrRentalNotFound     = errors.New("rental not found")
	ErrMovieAlreadyRented = errors.New("movie is already rented")
	ErrRentalDateInFuture = errors.New("rental date is in the future")
	ErrRentalLimitReached = errors.New("user reached the rental limit")
	ErrUserHasRentals     = errors.New("user still holds rentals")
	ErrOutOfStock         = errors.New("no copy in stock")
	ErrUnknownCategory    = errors.New("unknown price category")
)

// ValidationError reports a malformed input at the point of
// construction or mutation. It is never silently coerced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
