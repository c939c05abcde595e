// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/expense-planner/backend/config"
	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/application/usecase/category"
	"github.com/expense-planner/backend/internal/application/usecase/creditcard"
	"github.com/expense-planner/backend/internal/application/usecase/dashboard"
	"github.com/expense-planner/backend/internal/application/usecase/expense"
	"github.com/expense-planner/backend/internal/application/usecase/income"
	"github.com/expense-planner/backend/internal/application/usecase/reserve"
	"github.com/expense-planner/backend/internal/application/usecase/rollover"
	"github.com/expense-planner/backend/internal/infra/server/router"
	"github.com/expense-planner/backend/internal/integration/entrypoint/controller"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Store    adapter.StateStore
	Clock    adapter.Clock
	Rollover *rollover.RunRolloverUseCase
	Router   *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The state store and clock are injected so the same wiring serves the real
// server and the integration test harness.
func NewInjector(cfg *config.Config, store adapter.StateStore, clock adapter.Clock, storageHealthChecker func() bool) *Injector {
	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(store)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(store)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(store)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(store)
	setPaidUseCase := expense.NewSetPaidUseCase(store)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(store)
	createIncomeUseCase := income.NewCreateIncomeUseCase(store)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(store)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(store)
	setPausedUseCase := income.NewSetPausedUseCase(store)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(store)
	createCategoryUseCase := category.NewCreateCategoryUseCase(store)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(store)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(store)
	reorderCategoriesUseCase := category.NewReorderCategoriesUseCase(store)

	// Create credit card use cases
	listCreditCardsUseCase := creditcard.NewListCreditCardsUseCase(store)
	createCreditCardUseCase := creditcard.NewCreateCreditCardUseCase(store)
	updateCreditCardUseCase := creditcard.NewUpdateCreditCardUseCase(store)
	deleteCreditCardUseCase := creditcard.NewDeleteCreditCardUseCase(store)
	getCyclesUseCase := creditcard.NewGetCyclesUseCase(store, clock)

	// Create reserve use cases
	listReservesUseCase := reserve.NewListReservesUseCase(store)
	createReserveUseCase := reserve.NewCreateReserveUseCase(store)
	updateReserveUseCase := reserve.NewUpdateReserveUseCase(store)
	dissolveReserveUseCase := reserve.NewDissolveReserveUseCase(store)
	deleteReserveUseCase := reserve.NewDeleteReserveUseCase(store)

	// Create rollover and dashboard use cases
	runRolloverUseCase := rollover.NewRunRolloverUseCase(store, clock)
	getMonthSummaryUseCase := dashboard.NewGetMonthSummaryUseCase(store, clock, runRolloverUseCase)

	// Create controllers
	healthController := controller.NewHealthController(storageHealthChecker)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		setPaidUseCase,
	)

	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		createIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
		setPausedUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		reorderCategoriesUseCase,
	)

	creditCardController := controller.NewCreditCardController(
		listCreditCardsUseCase,
		createCreditCardUseCase,
		updateCreditCardUseCase,
		deleteCreditCardUseCase,
		getCyclesUseCase,
	)

	reserveController := controller.NewReserveController(
		listReservesUseCase,
		createReserveUseCase,
		updateReserveUseCase,
		dissolveReserveUseCase,
		deleteReserveUseCase,
		clock,
	)

	dashboardController := controller.NewDashboardController(
		getMonthSummaryUseCase,
		runRolloverUseCase,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		categoryController,
		creditCardController,
		reserveController,
		dashboardController,
	)

	return &Injector{
		Config:   cfg,
		Store:    store,
		Clock:    clock,
		Rollover: runRolloverUseCase,
		Router:   r,
	}
}
