// Package error defines domain-specific errors for the Expense Planner application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the state.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must not be negative")

	// ErrInvalidInstallmentCount is returned when the installment count is below one.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least one")

	// ErrUnknownCategoryReference is returned when the referenced category does not exist.
	ErrUnknownCategoryReference = errors.New("referenced category does not exist")

	// ErrUnknownCreditCardReference is returned when the referenced credit card does not exist.
	ErrUnknownCreditCardReference = errors.New("referenced credit card does not exist")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is the class and YYYY the specific error.
type ExpenseErrorCode string

const (
	ErrCodeExpenseNotFound         ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount    ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidInstallmentCount ExpenseErrorCode = "EXP-010003"
	ErrCodeUnknownCategory         ExpenseErrorCode = "EXP-010004"
	ErrCodeUnknownCreditCard       ExpenseErrorCode = "EXP-010005"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
