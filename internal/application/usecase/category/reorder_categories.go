package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
)

// ReorderCategoriesInput represents the input for category reordering: the
// desired order of enabled category ids, fallback excluded.
type ReorderCategoriesInput struct {
	OrderedIDs []uuid.UUID
}

// ReorderCategoriesOutput represents the output of category reordering.
type ReorderCategoriesOutput struct {
	Categories []*entity.Category
}

// ReorderCategoriesUseCase handles manual category reordering.
type ReorderCategoriesUseCase struct {
	store adapter.StateStore
}

// NewReorderCategoriesUseCase creates a new ReorderCategoriesUseCase instance.
func NewReorderCategoriesUseCase(store adapter.StateStore) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{
		store: store,
	}
}

// Execute assigns dense 0-based order numbers following the requested id
// order. Ids not listed keep their relative order after the listed ones; the
// fallback bucket always ends up last.
func (uc *ReorderCategoriesUseCase) Execute(ctx context.Context, input ReorderCategoriesInput) (*ReorderCategoriesOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	rank := 0
	for _, id := range input.OrderedIDs {
		category := state.CategoryByID(id)
		if category == nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %s not found", id),
				domainerror.ErrCategoryNotFound,
			)
		}
		if category.IsFallback() || category.IsDisabled {
			continue
		}
		category.OrderNumber = rank
		rank++
	}
	for _, category := range state.Categories {
		if category.IsFallback() || category.IsDisabled || containsID(input.OrderedIDs, category.ID) {
			continue
		}
		category.OrderNumber = rank
		rank++
	}
	state.Normalize()
	state.CategorySorting = entity.CategorySortingManual

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &ReorderCategoriesOutput{
		Categories: state.Categories,
	}, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
