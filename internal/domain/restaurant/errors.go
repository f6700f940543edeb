package restaurant

import "fmt"

// ValidationError reports a record or request field that violates a
// domain invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError checks if an error is a domain validation error.
func IsValidationError(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}

// IdentityMissingError is returned when an operation requires a caller
// identity and none was supplied.
type IdentityMissingError struct{}

func (IdentityMissingError) Error() string {
	return "no caller identity available"
}

// IsIdentityMissing checks if an error is an identity missing error.
func IsIdentityMissing(err error) bool {
	_, ok := err.(IdentityMissingError)
	return ok
}
