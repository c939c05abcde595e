package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
	Budget     decimal.Decimal
	IsDisabled bool
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	store adapter.StateStore
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(store adapter.StateStore) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		store: store,
	}
}

// Execute replaces the stored category. The fallback bucket keeps its
// reserved name and its income-synced budget regardless of the input.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
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

	existing := state.CategoryByID(input.CategoryID)
	if existing == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if existing.IsFallback() {
		if input.Name != entity.FallbackCategoryName {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeFallbackCategoryImmutable,
				"the fallback category cannot be renamed",
				domainerror.ErrFallbackCategoryImmutable,
			)
		}
	} else if input.Name == entity.FallbackCategoryName {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameReserved,
			"category name is reserved for the system fallback bucket",
			domainerror.ErrCategoryNameReserved,
		)
	}

	if other := state.CategoryByName(input.Name); other != nil && other.ID != input.CategoryID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	updated := &entity.Category{
		ID:          existing.ID,
		Name:        input.Name,
		Budget:      input.Budget,
		OrderNumber: existing.OrderNumber,
		IsDisabled:  input.IsDisabled,
	}
	if existing.IsFallback() {
		// Budget for the fallback bucket is derived from income, not stored.
		updated.Budget = existing.Budget
		updated.IsDisabled = false
	}
	state.ReplaceCategory(updated)
	state.Normalize()

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: updated,
	}, nil
}
