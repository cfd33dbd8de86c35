package services

import "errors"

// Failure taxonomy surfaced to the HTTP layer. Everything here is returned,
// never panicked; controllers translate to the success/message envelope.
var (
	ErrNotConfigured     = errors.New("Gateway is not configured")
	ErrNotFound          = errors.New("not found")
	ErrDuplicateName     = errors.New("Event name already exists")
	ErrInvalidCredential = errors.New("Invalid login credentials")
)

// ValidationError carries a user-facing message for malformed input caught
// before any gateway call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
