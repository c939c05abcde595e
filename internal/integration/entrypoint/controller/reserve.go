package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/application/usecase/reserve"
	"github.com/expense-planner/backend/internal/domain/calendar"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
	"github.com/expense-planner/backend/internal/integration/entrypoint/dto"
)

// ReserveController handles reserve endpoints.
type ReserveController struct {
	listUseCase     *reserve.ListReservesUseCase
	createUseCase   *reserve.CreateReserveUseCase
	updateUseCase   *reserve.UpdateReserveUseCase
	dissolveUseCase *reserve.DissolveReserveUseCase
	deleteUseCase   *reserve.DeleteReserveUseCase
	clock           adapter.Clock
}

// NewReserveController creates a new reserve controller instance.
func NewReserveController(
	listUseCase *reserve.ListReservesUseCase,
	createUseCase *reserve.CreateReserveUseCase,
	updateUseCase *reserve.UpdateReserveUseCase,
	dissolveUseCase *reserve.DissolveReserveUseCase,
	deleteUseCase *reserve.DeleteReserveUseCase,
	clock adapter.Clock,
) *ReserveController {
	return &ReserveController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		dissolveUseCase: dissolveUseCase,
		deleteUseCase:   deleteUseCase,
		clock:           clock,
	}
}

// List handles GET /reserves requests. Accrued values are computed as of the
// as_of query date (YYYY-MM-DD), defaulting to today.
func (c *ReserveController) List(ctx *gin.Context) {
	input := reserve.ListReservesInput{
		AsOf:       c.clock.Today(),
		ActiveOnly: ctx.Query("active_only") == "true",
	}
	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		asOf, err := calendar.Parse(asOfStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid as_of date format, expected YYYY-MM-DD",
			})
			return
		}
		input.AsOf = asOf
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve reserves",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReserveListResponse(output))
}

// Create handles POST /reserves requests.
func (c *ReserveController) Create(ctx *gin.Context) {
	var req dto.CreateReserveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), reserve.CreateReserveInput{
		Name:         req.Name,
		Amount:       req.Amount,
		CreationDate: req.CreationDate,
		InterestRate: req.InterestRate,
	})
	if err != nil {
		c.handleReserveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReserveResponse(reserve.ReserveWithValue{
		Reserve:      output.Reserve,
		AccruedValue: output.Reserve.AccruedValue(c.clock.Today()),
	}))
}

// Update handles PUT /reserves/:id requests.
func (c *ReserveController) Update(ctx *gin.Context) {
	reserveID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reserve ID format",
		})
		return
	}

	var req dto.UpdateReserveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), reserve.UpdateReserveInput{
		ReserveID:    reserveID,
		Name:         req.Name,
		Amount:       req.Amount,
		CreationDate: req.CreationDate,
		InterestRate: req.InterestRate,
	})
	if err != nil {
		c.handleReserveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReserveResponse(reserve.ReserveWithValue{
		Reserve:      output.Reserve,
		AccruedValue: output.Reserve.AccruedValue(c.clock.Today()),
	}))
}

// Dissolve handles PATCH /reserves/:id/dissolve requests.
func (c *ReserveController) Dissolve(ctx *gin.Context) {
	reserveID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reserve ID format",
		})
		return
	}

	var req dto.DissolveReserveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.dissolveUseCase.Execute(ctx.Request.Context(), reserve.DissolveReserveInput{
		ReserveID:       reserveID,
		DissolutionDate: req.DissolutionDate,
	})
	if err != nil {
		c.handleReserveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReserveResponse(reserve.ReserveWithValue{
		Reserve:      output.Reserve,
		AccruedValue: output.Reserve.AccruedValue(c.clock.Today()),
	}))
}

// Delete handles DELETE /reserves/:id requests.
func (c *ReserveController) Delete(ctx *gin.Context) {
	reserveID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reserve ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), reserve.DeleteReserveInput{
		ReserveID: reserveID,
	})
	if err != nil {
		c.handleReserveError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleReserveError handles reserve errors and returns appropriate HTTP responses.
func (c *ReserveController) handleReserveError(ctx *gin.Context, err error) {
	var rsvErr *domainerror.ReserveError
	if errors.As(err, &rsvErr) {
		statusCode := c.getStatusCodeForReserveError(rsvErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rsvErr.Message,
			Code:  string(rsvErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReserveError maps reserve error codes to HTTP status codes.
func (c *ReserveController) getStatusCodeForReserveError(code domainerror.ReserveErrorCode) int {
	switch code {
	case domainerror.ErrCodeReserveNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidReserveAmount,
		domainerror.ErrCodeInvalidDissolutionDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
