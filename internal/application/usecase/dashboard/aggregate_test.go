package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/billing"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

func date(s string) calendar.Date {
	return calendar.MustParse(s)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(money(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

func TestAggregateHistoricalSavings(t *testing.T) {
	state := entity.NewState()
	categoryID := state.FallbackCategory().ID
	state.Incomes = append(state.Incomes, entity.NewIncome("salary", money("1000"), date("2024-01-01")))
	state.Expenses = append(state.Expenses, entity.NewExpense("groceries", money("400"), categoryID, date("2024-01-15"), false))

	summary := Aggregate(state, date("2024-01-01"), date("2024-01-20"))

	assertAmount(t, "historical savings", summary.HistoricalSavings, "600")
	assertAmount(t, "executed income", summary.ExecutedIncome, "1000")
	assertAmount(t, "executed expense", summary.ExecutedExpense, "400")
}

func TestAggregateExecutedVsPendingSplit(t *testing.T) {
	state := entity.NewState()
	categoryID := state.FallbackCategory().ID

	paid := entity.NewExpense("rent", money("1200"), categoryID, date("2024-03-05"), false)
	upcoming := entity.NewExpense("utilities", money("150"), categoryID, date("2024-03-25"), false)
	state.Expenses = append(state.Expenses, paid, upcoming)

	early := entity.NewIncome("salary", money("3000"), date("2024-03-01"))
	late := entity.NewIncome("freelance invoice", money("500"), date("2024-03-28"))
	state.Incomes = append(state.Incomes, early, late)

	summary := Aggregate(state, date("2024-03-01"), date("2024-03-15"))

	assertAmount(t, "total expense", summary.TotalExpense, "1350")
	assertAmount(t, "executed expense", summary.ExecutedExpense, "1200")
	assertAmount(t, "pending expense", summary.PendingExpense, "150")
	assertAmount(t, "total income", summary.TotalIncome, "3500")
	assertAmount(t, "executed income", summary.ExecutedIncome, "3000")
	assertAmount(t, "pending income", summary.PendingIncome, "500")
}

func TestAggregateExecutionDateScopesMonth(t *testing.T) {
	state := entity.NewState()
	categoryID := state.FallbackCategory().ID

	// Purchased in January, executes in February: counts toward February.
	charged := entity.NewExpense("headphones", money("250"), categoryID, date("2024-01-28"), false)
	execution := date("2024-02-10")
	charged.ExecutionDate = &execution
	state.Expenses = append(state.Expenses, charged)

	january := Aggregate(state, date("2024-01-01"), date("2024-01-30"))
	february := Aggregate(state, date("2024-02-01"), date("2024-01-30"))

	assertAmount(t, "january total", january.TotalExpense, "0")
	assertAmount(t, "february total", february.TotalExpense, "250")
	assertAmount(t, "february pending", february.PendingExpense, "250")
}

func TestAggregatePausedRecordsExcluded(t *testing.T) {
	state := entity.NewState()
	paused := entity.NewIncome("old side gig", money("900"), date("2024-01-05"))
	paused.IsPaused = true
	state.Incomes = append(state.Incomes, paused)

	pausedCard := entity.NewCreditCard("expired visa", 25, 10, date("2024-06-01"))
	pausedCard.IsPaused = true
	state.CreditCards = append(state.CreditCards, pausedCard)

	summary := Aggregate(state, date("2024-01-01"), date("2024-01-20"))

	assertAmount(t, "total income", summary.TotalIncome, "0")
	assertAmount(t, "historical savings", summary.HistoricalSavings, "0")
	if len(summary.Cards) != 0 {
		t.Errorf("paused card produced metrics: %+v", summary.Cards)
	}
}

func TestAggregateProjectedBalance(t *testing.T) {
	state := entity.NewState()
	categoryID := state.FallbackCategory().ID
	card := entity.NewCreditCard("visa", 25, 10, date("2030-01-01"))
	state.CreditCards = append(state.CreditCards, card)

	state.Incomes = append(state.Incomes,
		entity.NewIncome("salary", money("3000"), date("2024-01-05")),
		entity.NewIncome("bonus", money("400"), date("2024-01-28")),
	)

	// Pending cash expense: not subtracted from the projection.
	cash := entity.NewExpense("dinner out", money("100"), categoryID, date("2024-01-25"), false)

	// Pending card charge in the selected month: subtracted.
	charge := entity.NewExpense("laptop stand", money("200"), categoryID, date("2024-01-18"), false)
	billing.AttachCard(charge, card)
	if charge.ExecutionDate.String() != "2024-02-10" {
		t.Fatalf("fixture execution date = %s, want 2024-02-10", charge.ExecutionDate)
	}

	state.Expenses = append(state.Expenses, cash, charge)

	// Viewing February: the card charge lands there and is still pending.
	summary := Aggregate(state, date("2024-02-01"), date("2024-01-20"))

	// Historical: 3000 executed income, nothing executed yet on the expense
	// side. Pending february income: none. Pending february card charges: 200.
	assertAmount(t, "historical savings", summary.HistoricalSavings, "3000")
	assertAmount(t, "projected balance", summary.ProjectedBalance, "2800")
}

func TestAggregateCardCycleMetrics(t *testing.T) {
	state := entity.NewState()
	categoryID := state.FallbackCategory().ID
	card := entity.NewCreditCard("visa", 25, 10, date("2030-01-01"))
	other := entity.NewCreditCard("mastercard", 5, 15, date("2030-01-01"))
	state.CreditCards = append(state.CreditCards, card, other)

	today := date("2024-01-20")
	cycle := billing.Boundaries(card.ClosingDay, card.DueDay, today)
	if cycle.NextDue.String() != "2024-02-10" || cycle.SecondNextDue.String() != "2024-03-10" {
		t.Fatalf("unexpected cycle fixture: %+v", cycle)
	}

	addCharge := func(description, amount string, purchase calendar.Date, target *entity.CreditCard) *entity.Expense {
		expense := entity.NewExpense(description, money(amount), categoryID, purchase, false)
		billing.AttachCard(expense, target)
		state.Expenses = append(state.Expenses, expense)
		return expense
	}

	addCharge("groceries", "120", date("2024-01-10"), card)      // executes 2024-02-10
	addCharge("fuel", "80", date("2024-01-15"), card)            // executes 2024-02-10
	addCharge("late purchase", "60", date("2024-01-28"), card)   // past closing: 2024-03-10
	addCharge("other card buy", "999", date("2024-01-10"), other)

	summary := Aggregate(state, date("2024-01-01"), today)

	var metrics *CardCycleMetrics
	for i := range summary.Cards {
		if summary.Cards[i].Card.ID == card.ID {
			metrics = &summary.Cards[i]
		}
	}
	if metrics == nil {
		t.Fatal("no metrics for the visa card")
	}

	assertAmount(t, "next cycle total", metrics.NextCycleTotal, "200")
	assertAmount(t, "second next cycle total", metrics.SecondNextCycleTotal, "60")
	assertAmount(t, "pending total", metrics.PendingTotal, "260")
	if !metrics.Cycle.NextDue.Equal(cycle.NextDue) {
		t.Errorf("metrics cycle next due = %s, want %s", metrics.Cycle.NextDue, cycle.NextDue)
	}
}

func TestAggregateCategoryBudgets(t *testing.T) {
	state := entity.NewState()
	home := entity.NewCategory("home", money("900"), 0)
	state.Categories = append(state.Categories, home)
	state.Normalize()
	fallbackID := state.FallbackCategory().ID

	state.Incomes = append(state.Incomes, entity.NewIncome("salary", money("3000"), date("2024-01-05")))
	state.Expenses = append(state.Expenses,
		entity.NewExpense("rent", money("700"), home.ID, date("2024-01-05"), false),
		entity.NewExpense("light bulbs", money("50"), home.ID, date("2024-01-25"), false),
		entity.NewExpense("misc", money("30"), fallbackID, date("2024-01-10"), false),
	)

	summary := Aggregate(state, date("2024-01-01"), date("2024-01-20"))

	byName := make(map[string]CategoryBudgetStatus)
	for _, status := range summary.Categories {
		byName[status.Category.Name] = status
	}

	homeStatus, ok := byName["home"]
	if !ok {
		t.Fatal("missing home category status")
	}
	assertAmount(t, "home executed", homeStatus.Executed, "700")
	assertAmount(t, "home pending", homeStatus.Pending, "50")
	assertAmount(t, "home remaining", homeStatus.Remaining, "150")

	fallbackStatus, ok := byName[entity.FallbackCategoryName]
	if !ok {
		t.Fatal("missing fallback category status")
	}
	assertAmount(t, "fallback budget", fallbackStatus.Budget, "3000")
	assertAmount(t, "fallback executed", fallbackStatus.Executed, "30")

	// Fallback must come last in stored order.
	last := summary.Categories[len(summary.Categories)-1]
	if !last.Category.IsFallback() {
		t.Errorf("last category = %s, want fallback", last.Category.Name)
	}
}

func TestAggregateMissingCategoryReference(t *testing.T) {
	state := entity.NewState()
	orphan := entity.NewExpense("mystery charge", money("75"), uuid.New(), date("2024-01-10"), false)
	state.Expenses = append(state.Expenses, orphan)

	summary := Aggregate(state, date("2024-01-01"), date("2024-01-20"))

	assertAmount(t, "total expense", summary.TotalExpense, "75")
	assertAmount(t, "historical savings", summary.HistoricalSavings, "-75")
	for _, status := range summary.Categories {
		if !status.Executed.IsZero() || !status.Pending.IsZero() {
			t.Errorf("orphan amount attributed to category %s", status.Category.Name)
		}
	}
}

func TestAggregateReservesTotal(t *testing.T) {
	state := entity.NewState()
	rate := money("0.10")
	active := entity.NewReserve("emergency fund", money("1000"), date("2023-01-20"), &rate)
	dissolved := entity.NewReserve("vacation", money("500"), date("2023-06-01"), nil)
	dissolution := date("2023-12-01")
	dissolved.DissolutionDate = &dissolution
	state.Reserves = append(state.Reserves, active, dissolved)

	summary := Aggregate(state, date("2024-01-01"), date("2024-01-20"))

	// 365 days at 10% simple interest on 1000; the dissolved reserve does
	// not count.
	assertAmount(t, "reserves total", summary.ReservesTotal, "1100")
}
