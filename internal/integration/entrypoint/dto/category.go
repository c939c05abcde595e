package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name   string          `json:"name" binding:"required,min=1,max=50"`
	Budget decimal.Decimal `json:"budget"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=50"`
	Budget     decimal.Decimal `json:"budget"`
	IsDisabled bool            `json:"is_disabled,omitempty"`
}

// ReorderCategoriesRequest represents the request body for manual reordering.
type ReorderCategoriesRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required,min=1,dive,uuid"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	OrderNumber int             `json:"order_number"`
	IsDisabled  bool            `json:"is_disabled"`
	IsFallback  bool            `json:"is_fallback"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Budget:      category.Budget,
		OrderNumber: category.OrderNumber,
		IsDisabled:  category.IsDisabled,
		IsFallback:  category.IsFallback(),
	}
}

// ToCategoryListResponse converts a list of categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
