package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FallbackCategoryName is the reserved name of the system fallback bucket.
// Exactly one category may hold this name; it is never deletable, always
// sorts last, and its budget is kept synced to the month's active income.
const FallbackCategoryName = "Others"

// Category represents an expense category with a monthly budget.
type Category struct {
	ID          uuid.UUID
	Name        string
	Budget      decimal.Decimal
	OrderNumber int // Dense 0-based rank among enabled categories
	IsDisabled  bool
}

// NewCategory creates a new Category entity.
func NewCategory(name string, budget decimal.Decimal, orderNumber int) *Category {
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Budget:      budget,
		OrderNumber: orderNumber,
	}
}

// NewFallbackCategory creates the reserved fallback category.
func NewFallbackCategory(orderNumber int) *Category {
	return NewCategory(FallbackCategoryName, decimal.Zero, orderNumber)
}

// IsFallback reports whether the category is the reserved fallback bucket.
func (c *Category) IsFallback() bool {
	return c.Name == FallbackCategoryName
}
