// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-planner/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	expenseController    *controller.ExpenseController
	incomeController     *controller.IncomeController
	categoryController   *controller.CategoryController
	creditCardController *controller.CreditCardController
	reserveController    *controller.ReserveController
	dashboardController  *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	categoryController *controller.CategoryController,
	creditCardController *controller.CreditCardController,
	reserveController *controller.ReserveController,
	dashboardController *controller.DashboardController,
) *Router {
	return &Router{
		healthController:     healthController,
		expenseController:    expenseController,
		incomeController:     incomeController,
		categoryController:   categoryController,
		creditCardController: creditCardController,
		reserveController:    reserveController,
		dashboardController:  dashboardController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.PATCH("/:id/paid", r.expenseController.SetPaid)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		if r.incomeController != nil {
			incomes := v1.Group("/incomes")
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.PUT("/:id", r.incomeController.Update)
				incomes.PATCH("/:id/paused", r.incomeController.SetPaused)
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/reorder", r.categoryController.Reorder)
				categories.PUT("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.creditCardController != nil {
			creditCards := v1.Group("/credit-cards")
			{
				creditCards.GET("", r.creditCardController.List)
				creditCards.POST("", r.creditCardController.Create)
				creditCards.PUT("/:id", r.creditCardController.Update)
				creditCards.GET("/:id/cycles", r.creditCardController.GetCycles)
				creditCards.DELETE("/:id", r.creditCardController.Delete)
			}
		}

		if r.reserveController != nil {
			reserves := v1.Group("/reserves")
			{
				reserves.GET("", r.reserveController.List)
				reserves.POST("", r.reserveController.Create)
				reserves.PUT("/:id", r.reserveController.Update)
				reserves.PATCH("/:id/dissolve", r.reserveController.Dissolve)
				reserves.DELETE("/:id", r.reserveController.Delete)
			}
		}

		if r.dashboardController != nil {
			v1.GET("/dashboard/summary", r.dashboardController.GetSummary)
			v1.POST("/rollover", r.dashboardController.RunRollover)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
