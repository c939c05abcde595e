package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	store adapter.StateStore
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(store adapter.StateStore) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		store: store,
	}
}

// Execute removes the category. The reserved fallback bucket and any
// category referenced by an expense are protected.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
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
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeFallbackCategoryImmutable,
			"the fallback category cannot be deleted",
			domainerror.ErrFallbackCategoryImmutable,
		)
	}
	if state.CategoryInUse(input.CategoryID) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			"category is referenced by existing expenses",
			domainerror.ErrCategoryInUse,
		)
	}

	state.RemoveCategory(input.CategoryID)
	state.Normalize()

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
