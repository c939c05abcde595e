package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the state.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category with the same name already exists.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameReserved is returned when creating or renaming a category to the reserved fallback name.
	ErrCategoryNameReserved = errors.New("category name is reserved")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCategoryInUse is returned when deleting a category referenced by an expense.
	ErrCategoryInUse = errors.New("category is referenced by expenses")

	// ErrFallbackCategoryImmutable is returned when deleting or renaming the fallback category.
	ErrFallbackCategoryImmutable = errors.New("fallback category cannot be deleted or renamed")

	// ErrInvalidBudget is returned when a category budget is negative.
	ErrInvalidBudget = errors.New("category budget must not be negative")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound          CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists        CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameReserved      CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryInUse             CategoryErrorCode = "CAT-010004"
	ErrCodeFallbackCategoryImmutable CategoryErrorCode = "CAT-010005"
	ErrCodeInvalidBudget             CategoryErrorCode = "CAT-010006"
	ErrCodeCategoryNameTooLong       CategoryErrorCode = "CAT-010007"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
