package error

import "errors"

// Credit card domain errors.
var (
	// ErrCreditCardNotFound is returned when a credit card is not found in the state.
	ErrCreditCardNotFound = errors.New("credit card not found")

	// ErrInvalidCycleDay is returned when a closing or due day falls outside [1, 30].
	ErrInvalidCycleDay = errors.New("closing and due days must be between 1 and 30")

	// ErrCreditCardInUse is returned when deleting a card referenced by an expense.
	ErrCreditCardInUse = errors.New("credit card is referenced by expenses")
)

// CreditCardErrorCode defines error codes for credit card errors.
type CreditCardErrorCode string

const (
	ErrCodeCreditCardNotFound CreditCardErrorCode = "CARD-010001"
	ErrCodeInvalidCycleDay    CreditCardErrorCode = "CARD-010002"
	ErrCodeCreditCardInUse    CreditCardErrorCode = "CARD-010003"
)

// CreditCardError represents a credit card error with code and message.
type CreditCardError struct {
	Code    CreditCardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CreditCardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CreditCardError) Unwrap() error {
	return e.Err
}

// NewCreditCardError creates a new CreditCardError with the given code and message.
func NewCreditCardError(code CreditCardErrorCode, message string, err error) *CreditCardError {
	return &CreditCardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
