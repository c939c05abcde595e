package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/application/usecase/creditcard"
	"github.com/expense-planner/backend/internal/domain/calendar"
	domainerror "github.com/expense-planner/backend/internal/domain/error"
	"github.com/expense-planner/backend/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	listUseCase      *creditcard.ListCreditCardsUseCase
	createUseCase    *creditcard.CreateCreditCardUseCase
	updateUseCase    *creditcard.UpdateCreditCardUseCase
	deleteUseCase    *creditcard.DeleteCreditCardUseCase
	getCyclesUseCase *creditcard.GetCyclesUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	listUseCase *creditcard.ListCreditCardsUseCase,
	createUseCase *creditcard.CreateCreditCardUseCase,
	updateUseCase *creditcard.UpdateCreditCardUseCase,
	deleteUseCase *creditcard.DeleteCreditCardUseCase,
	getCyclesUseCase *creditcard.GetCyclesUseCase,
) *CreditCardController {
	return &CreditCardController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		getCyclesUseCase: getCyclesUseCase,
	}
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	input := creditcard.ListCreditCardsInput{
		IncludePaused: ctx.Query("include_paused") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve credit cards",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(output.CreditCards))
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), creditcard.CreateCreditCardInput{
		Description:  req.Description,
		ClosingDay:   req.ClosingDay,
		DueDay:       req.DueDay,
		GoodThruDate: req.GoodThruDate,
	})
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.CreditCard))
}

// Update handles PUT /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), creditcard.UpdateCreditCardInput{
		CreditCardID: cardID,
		Description:  req.Description,
		ClosingDay:   req.ClosingDay,
		DueDay:       req.DueDay,
		GoodThruDate: req.GoodThruDate,
		IsPaused:     req.IsPaused,
	})
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.CreditCard))
}

// GetCycles handles GET /credit-cards/:id/cycles requests. An optional
// reference query parameter (YYYY-MM-DD) anchors the cycle calculation;
// it defaults to today.
func (c *CreditCardController) GetCycles(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	input := creditcard.GetCyclesInput{
		CreditCardID: cardID,
	}
	if refStr := ctx.Query("reference"); refStr != "" {
		reference, err := calendar.Parse(refStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid reference date format, expected YYYY-MM-DD",
			})
			return
		}
		input.ReferenceDate = reference
	}

	output, err := c.getCyclesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCycleBoundariesResponse(output.Boundaries))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), creditcard.DeleteCreditCardInput{
		CreditCardID: cardID,
	})
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCreditCardError handles card errors and returns appropriate HTTP responses.
func (c *CreditCardController) handleCreditCardError(ctx *gin.Context, err error) {
	var cardErr *domainerror.CreditCardError
	if errors.As(err, &cardErr) {
		statusCode := c.getStatusCodeForCreditCardError(cardErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCreditCardError maps card error codes to HTTP status codes.
func (c *CreditCardController) getStatusCodeForCreditCardError(code domainerror.CreditCardErrorCode) int {
	switch code {
	case domainerror.ErrCodeCreditCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCreditCardInUse:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCycleDay:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
