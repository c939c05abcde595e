package error

import "errors"

// Reserve domain errors.
var (
	// ErrReserveNotFound is returned when a reserve is not found in the state.
	ErrReserveNotFound = errors.New("reserve not found")

	// ErrInvalidReserveAmount is returned when the reserve amount is negative.
	ErrInvalidReserveAmount = errors.New("reserve amount must not be negative")

	// ErrInvalidDissolutionDate is returned when the dissolution date precedes the creation date.
	ErrInvalidDissolutionDate = errors.New("dissolution date must not precede creation date")
)

// ReserveErrorCode defines error codes for reserve errors.
type ReserveErrorCode string

const (
	ErrCodeReserveNotFound        ReserveErrorCode = "RSV-010001"
	ErrCodeInvalidReserveAmount   ReserveErrorCode = "RSV-010002"
	ErrCodeInvalidDissolutionDate ReserveErrorCode = "RSV-010003"
)

// ReserveError represents a reserve error with code and message.
type ReserveError struct {
	Code    ReserveErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReserveError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReserveError) Unwrap() error {
	return e.Err
}

// NewReserveError creates a new ReserveError with the given code and message.
func NewReserveError(code ReserveErrorCode, message string, err error) *ReserveError {
	return &ReserveError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
