package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

func newTestRedisStore(t *testing.T) *redisStateRepository {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return &redisStateRepository{client: client}
}

func TestRedisStateRepositoryLoadEmpty(t *testing.T) {
	store := newTestRedisStore(t)

	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state before any save, got %+v", state)
	}
}

func TestRedisStateRepositoryRoundTrip(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	state := entity.NewState()
	categoryID := state.FallbackCategory().ID

	card := entity.NewCreditCard("visa", 25, 10, calendar.MustParse("2030-01-01"))
	state.CreditCards = append(state.CreditCards, card)

	expense := entity.NewExpense("groceries", decimal.RequireFromString("120.50"), categoryID, calendar.MustParse("2024-01-10"), false)
	expense.CreditCardID = &card.ID
	execution := calendar.MustParse("2024-02-10")
	expense.ExecutionDate = &execution
	state.Expenses = append(state.Expenses, expense)

	state.Incomes = append(state.Incomes, entity.NewIncome("salary", decimal.RequireFromString("3000"), calendar.MustParse("2024-01-05")))

	rate := decimal.RequireFromString("0.12")
	state.Reserves = append(state.Reserves, entity.NewReserve("emergency fund", decimal.RequireFromString("1000"), calendar.MustParse("2023-06-01"), &rate))

	lastAccess := calendar.MustParse("2024-01-15")
	state.LastAccessDate = &lastAccess

	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a state after save")
	}

	if len(loaded.Expenses) != 1 || len(loaded.Incomes) != 1 || len(loaded.Reserves) != 1 {
		t.Fatalf("collection sizes changed across round trip: %d expenses, %d incomes, %d reserves",
			len(loaded.Expenses), len(loaded.Incomes), len(loaded.Reserves))
	}

	loadedExpense := loaded.Expenses[0]
	if loadedExpense.ID != expense.ID {
		t.Errorf("expense id changed: %s != %s", loadedExpense.ID, expense.ID)
	}
	if !loadedExpense.Amount.Equal(expense.Amount) {
		t.Errorf("expense amount changed: %s != %s", loadedExpense.Amount, expense.Amount)
	}
	if loadedExpense.ExecutionDate == nil || !loadedExpense.ExecutionDate.Equal(execution) {
		t.Errorf("execution date changed: %v != %s", loadedExpense.ExecutionDate, execution)
	}
	if loadedExpense.CreditCardID == nil || *loadedExpense.CreditCardID != card.ID {
		t.Error("credit card reference lost across round trip")
	}

	if loaded.LastAccessDate == nil || !loaded.LastAccessDate.Equal(lastAccess) {
		t.Errorf("last access date changed: %v != %s", loaded.LastAccessDate, lastAccess)
	}
	if loaded.Reserves[0].InterestRate == nil || !loaded.Reserves[0].InterestRate.Equal(rate) {
		t.Error("reserve interest rate lost across round trip")
	}
}

func TestRedisStateRepositorySaveReplaces(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	first := entity.NewState()
	first.Incomes = append(first.Incomes, entity.NewIncome("salary", decimal.RequireFromString("3000"), calendar.MustParse("2024-01-05")))
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := entity.NewState()
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Incomes) != 0 {
		t.Errorf("expected the second save to replace the document, got %d incomes", len(loaded.Incomes))
	}
}
