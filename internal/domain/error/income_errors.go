package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income is not found in the state.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrInvalidIncomeAmount is returned when the income amount is negative.
	ErrInvalidIncomeAmount = errors.New("income amount must not be negative")
)

// IncomeErrorCode defines error codes for income errors.
type IncomeErrorCode string

const (
	ErrCodeIncomeNotFound      IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomeAmount IncomeErrorCode = "INC-010002"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
