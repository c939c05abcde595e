package rollover

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/billing"
	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// memoryStore is an in-memory StateStore for use case tests.
type memoryStore struct {
	state *entity.State
	saves int
}

func (s *memoryStore) Load(_ context.Context) (*entity.State, error) {
	return s.state, nil
}

func (s *memoryStore) Save(_ context.Context, state *entity.State) error {
	s.state = state
	s.saves++
	return nil
}

// fixedClock pins Today to a given date.
type fixedClock struct {
	today calendar.Date
}

func (c fixedClock) Today() calendar.Date {
	return c.today
}

func date(s string) calendar.Date {
	return calendar.MustParse(s)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCopyMonthIncomes(t *testing.T) {
	salary := entity.NewIncome("salary", money("3000"), date("2024-01-31"))
	paused := entity.NewIncome("old freelance gig", money("500"), date("2024-01-15"))
	paused.IsPaused = true
	otherMonth := entity.NewIncome("bonus", money("800"), date("2023-12-20"))

	result := CopyMonth(nil, []*entity.Income{salary, paused, otherMonth}, nil, date("2024-01-01"), date("2024-02-01"))

	if len(result.NewIncomes) != 1 {
		t.Fatalf("expected 1 copied income, got %d", len(result.NewIncomes))
	}
	copied := result.NewIncomes[0]
	if copied.ID == salary.ID {
		t.Error("copied income must carry a fresh id")
	}
	if copied.Date.String() != "2024-02-29" {
		t.Errorf("copied income date = %s, want day 31 clamped to 2024-02-29", copied.Date)
	}
	if !copied.Amount.Equal(salary.Amount) || copied.Description != salary.Description {
		t.Error("copied income must keep amount and description")
	}
}

func TestCopyMonthRecurringSimpleExpenses(t *testing.T) {
	card := entity.NewCreditCard("visa", 25, 10, date("2030-01-01"))
	categoryID := entity.NewCategory("home", money("900"), 0).ID

	rent := entity.NewExpense("rent", money("1200"), categoryID, date("2024-01-05"), true)
	oneOff := entity.NewExpense("concert tickets", money("80"), categoryID, date("2024-01-12"), false)
	streaming := entity.NewExpense("streaming", money("30"), categoryID, date("2024-01-20"), true)
	streaming.CreditCardID = &card.ID
	execution := date("2024-02-10")
	streaming.ExecutionDate = &execution

	result := CopyMonth(
		[]*entity.Expense{rent, oneOff, streaming},
		nil,
		[]*entity.CreditCard{card},
		date("2024-01-01"),
		date("2024-02-01"),
	)

	if len(result.NewExpenses) != 2 {
		t.Fatalf("expected 2 copied expenses, got %d", len(result.NewExpenses))
	}

	var copiedRent, copiedStreaming *entity.Expense
	for _, expense := range result.NewExpenses {
		switch expense.Description {
		case "rent":
			copiedRent = expense
		case "streaming":
			copiedStreaming = expense
		}
	}
	if copiedRent == nil || copiedStreaming == nil {
		t.Fatal("expected rent and streaming to be copied")
	}

	if copiedRent.Date.String() != "2024-02-05" {
		t.Errorf("copied rent date = %s, want 2024-02-05", copiedRent.Date)
	}
	if copiedRent.IsPaid {
		t.Error("copied expense must start unpaid")
	}
	if copiedStreaming.ExecutionDate == nil || copiedStreaming.ExecutionDate.String() != "2024-03-10" {
		t.Errorf("copied card expense execution = %v, want re-resolved 2024-03-10", copiedStreaming.ExecutionDate)
	}
}

func TestCopyMonthInstallmentSeries(t *testing.T) {
	card := entity.NewCreditCard("visa", 25, 10, date("2030-01-01"))
	categoryID := entity.NewCategory("hobby", money("500"), 0).ID

	original := billingSeries(t, card, categoryID)
	result := CopyMonth(original, nil, []*entity.CreditCard{card}, date("2024-01-01"), date("2024-02-01"))

	if len(result.NewExpenses) != 3 {
		t.Fatalf("expected a fresh 3-installment series, got %d expenses", len(result.NewExpenses))
	}

	first := result.NewExpenses[0]
	if first.ExpenseInstallmentID == nil {
		t.Fatal("copied series must carry a series id")
	}
	if *first.ExpenseInstallmentID == *original[0].ExpenseInstallmentID {
		t.Error("copied series must carry a new series id")
	}
	if first.Date.String() != "2024-02-20" {
		t.Errorf("copied series starts at %s, want 2024-02-20", first.Date)
	}
	if !first.IsRecurring {
		t.Error("copied series must stay recurring")
	}

	sum := decimal.Zero
	for i, expense := range result.NewExpenses {
		sum = sum.Add(expense.Amount)
		if expense.InstallmentNumber != i+1 {
			t.Errorf("installment %d carries number %d", i+1, expense.InstallmentNumber)
		}
	}
	if !sum.Equal(money("300")) {
		t.Errorf("copied series sums to %s, want 300", sum)
	}
}

func TestCopyMonthEmptySourceMonth(t *testing.T) {
	result := CopyMonth(nil, nil, nil, date("2024-01-01"), date("2024-02-01"))
	if len(result.NewExpenses) != 0 || len(result.NewIncomes) != 0 {
		t.Errorf("expected empty result, got %d expenses and %d incomes",
			len(result.NewExpenses), len(result.NewIncomes))
	}
}

func TestCopyMonthEqualUpToID(t *testing.T) {
	salary := entity.NewIncome("salary", money("3000"), date("2024-01-31"))
	incomes := []*entity.Income{salary}

	first := CopyMonth(nil, incomes, nil, date("2024-01-01"), date("2024-02-01"))
	second := CopyMonth(nil, incomes, nil, date("2024-01-01"), date("2024-02-01"))

	if len(first.NewIncomes) != 1 || len(second.NewIncomes) != 1 {
		t.Fatal("expected one income per copy")
	}
	a, b := first.NewIncomes[0], second.NewIncomes[0]
	if a.ID == b.ID {
		t.Error("each copy must generate fresh ids")
	}
	if !a.Amount.Equal(b.Amount) || !a.Date.Equal(b.Date) || a.Description != b.Description {
		t.Error("copies must be value-equal up to id")
	}
}

func TestRunRollover(t *testing.T) {
	newStateWithRecurring := func(lastAccess string) *entity.State {
		state := entity.NewState()
		categoryID := state.FallbackCategory().ID
		state.Incomes = append(state.Incomes, entity.NewIncome("salary", money("3000"), date("2024-01-05")))
		state.Expenses = append(state.Expenses, entity.NewExpense("rent", money("1200"), categoryID, date("2024-01-05"), true))
		if lastAccess != "" {
			last := date(lastAccess)
			state.LastAccessDate = &last
		}
		return state
	}

	t.Run("single month gap copies forward", func(t *testing.T) {
		store := &memoryStore{state: newStateWithRecurring("2024-01-28")}
		uc := NewRunRolloverUseCase(store, fixedClock{today: date("2024-02-03")})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Performed || output.NewIncomes != 1 || output.NewExpenses != 1 {
			t.Errorf("output = %+v, want one copied income and expense", output)
		}
		if store.state.LastAccessDate == nil || store.state.LastAccessDate.String() != "2024-02-03" {
			t.Errorf("last access date = %v, want 2024-02-03", store.state.LastAccessDate)
		}
	})

	t.Run("december to january counts as one month", func(t *testing.T) {
		state := entity.NewState()
		state.Incomes = append(state.Incomes, entity.NewIncome("salary", money("3000"), date("2023-12-05")))
		last := date("2023-12-28")
		state.LastAccessDate = &last
		store := &memoryStore{state: state}
		uc := NewRunRolloverUseCase(store, fixedClock{today: date("2024-01-02")})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Performed || output.NewIncomes != 1 {
			t.Errorf("output = %+v, want the december income copied", output)
		}
	})

	t.Run("same month is a no-op", func(t *testing.T) {
		store := &memoryStore{state: newStateWithRecurring("2024-01-10")}
		uc := NewRunRolloverUseCase(store, fixedClock{today: date("2024-01-25")})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Performed {
			t.Error("expected no copy within the same month")
		}
	})

	t.Run("multi month gap is a no-op", func(t *testing.T) {
		store := &memoryStore{state: newStateWithRecurring("2024-01-10")}
		uc := NewRunRolloverUseCase(store, fixedClock{today: date("2024-04-02")})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Performed {
			t.Error("expected no backfill across a multi-month gap")
		}
		if store.state.LastAccessDate.String() != "2024-04-02" {
			t.Error("last access date must still advance")
		}
	})

	t.Run("missing last access date records today without copying", func(t *testing.T) {
		store := &memoryStore{state: newStateWithRecurring("")}
		uc := NewRunRolloverUseCase(store, fixedClock{today: date("2024-02-15")})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Performed {
			t.Error("expected no copy on first access")
		}
		if store.state.LastAccessDate == nil || store.state.LastAccessDate.String() != "2024-02-15" {
			t.Errorf("last access date = %v, want 2024-02-15", store.state.LastAccessDate)
		}
	})

	t.Run("second run on the same day is a no-op", func(t *testing.T) {
		store := &memoryStore{state: newStateWithRecurring("2024-01-28")}
		uc := NewRunRolloverUseCase(store, fixedClock{today: date("2024-02-03")})

		if _, err := uc.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Performed {
			t.Error("expected the second run to perform no copy")
		}
		if got := len(store.state.Incomes); got != 2 {
			t.Errorf("incomes after two runs = %d, want 2", got)
		}
	})
}

// billingSeries builds a recurring 3x100 installment series opened on
// 2024-01-20 against the given card.
func billingSeries(t *testing.T, card *entity.CreditCard, categoryID uuid.UUID) []*entity.Expense {
	t.Helper()
	series := billing.ExpandInstallments(billing.ExpandInput{
		Description:  "new couch",
		TotalAmount:  money("300"),
		Count:        3,
		PurchaseDate: date("2024-01-20"),
		CategoryID:   categoryID,
		Card:         card,
		IsRecurring:  true,
	})
	if len(series) != 3 {
		t.Fatalf("fixture produced %d installments, want 3", len(series))
	}
	return series
}
