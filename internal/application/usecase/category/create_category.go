package category

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name   string
	Budget decimal.Decimal
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	store adapter.StateStore
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(store adapter.StateStore) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		store: store,
	}
}

// Execute performs the category creation. The new category is ranked last
// among the enabled categories, just before the fallback bucket.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == entity.FallbackCategoryName {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameReserved,
			"category name is reserved for the system fallback bucket",
			domainerror.ErrCategoryNameReserved,
		)
	}
	if len(input.Name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	if input.Budget.IsNegative() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidBudget,
			"budget must not be negative",
			domainerror.ErrInvalidBudget,
		)
	}

	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	if state.CategoryByName(input.Name) != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	// Rank just below the fallback bucket; Normalize densifies the order.
	category := entity.NewCategory(input.Name, input.Budget, len(state.Categories)-1)
	state.Categories = append(state.Categories, category)
	state.Normalize()

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
