package category

import (
	"context"
	"sort"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	IncludeDisabled bool
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	store adapter.StateStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store adapter.StateStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		store: store,
	}
}

// Execute lists categories in rank order, fallback last.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	state, err := loadState(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, 0, len(state.Categories))
	for _, category := range state.Categories {
		if category.IsDisabled && !input.IncludeDisabled {
			continue
		}
		categories = append(categories, category)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		a, b := categories[i], categories[j]
		if a.IsFallback() != b.IsFallback() {
			return b.IsFallback()
		}
		if state.CategorySorting == entity.CategorySortingByName {
			return a.Name < b.Name
		}
		return a.OrderNumber < b.OrderNumber
	})

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
