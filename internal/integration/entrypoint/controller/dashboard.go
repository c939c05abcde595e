package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-planner/backend/internal/application/usecase/dashboard"
	"github.com/expense-planner/backend/internal/application/usecase/rollover"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard and month-transition endpoints.
type DashboardController struct {
	summaryUseCase  *dashboard.GetMonthSummaryUseCase
	rolloverUseCase *rollover.RunRolloverUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetMonthSummaryUseCase,
	rolloverUseCase *rollover.RunRolloverUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:  summaryUseCase,
		rolloverUseCase: rolloverUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests. An optional month
// query parameter in YYYY-MM format selects the month, defaulting to the
// current one.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	input := dashboard.GetMonthSummaryInput{}

	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := calendar.Parse(monthStr + "-01")
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format, expected YYYY-MM",
			})
			return
		}
		input.Month = month
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthSummaryResponse(output.Summary))
}

// RunRollover handles POST /rollover requests, forcing the month-transition
// check outside a dashboard load.
func (c *DashboardController) RunRollover(ctx *gin.Context) {
	output, err := c.rolloverUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to run month transition check",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.RolloverResponse{
		Performed:   output.Performed,
		NewExpenses: output.NewExpenses,
		NewIncomes:  output.NewIncomes,
	})
}
