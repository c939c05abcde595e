package persistence

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

func newTestDBStore(t *testing.T) *stateRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&StateModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return &stateRepository{db: db}
}

func TestStateRepositoryLoadEmpty(t *testing.T) {
	store := newTestDBStore(t)

	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state before any save, got %+v", state)
	}
}

func TestStateRepositoryRoundTrip(t *testing.T) {
	store := newTestDBStore(t)
	ctx := context.Background()

	state := entity.NewState()
	categoryID := state.FallbackCategory().ID
	state.Expenses = append(state.Expenses, entity.NewExpense("groceries", decimal.RequireFromString("120.50"), categoryID, calendar.MustParse("2024-01-10"), true))
	state.Incomes = append(state.Incomes, entity.NewIncome("salary", decimal.RequireFromString("3000"), calendar.MustParse("2024-01-05")))
	state.Language = "pt"
	state.CategorySorting = entity.CategorySortingByName

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
	if len(loaded.Expenses) != 1 || len(loaded.Incomes) != 1 {
		t.Fatalf("collection sizes changed across round trip: %d expenses, %d incomes",
			len(loaded.Expenses), len(loaded.Incomes))
	}
	if !loaded.Expenses[0].IsRecurring {
		t.Error("recurring flag lost across round trip")
	}
	if !loaded.Expenses[0].Amount.Equal(decimal.RequireFromString("120.50")) {
		t.Errorf("expense amount changed: %s", loaded.Expenses[0].Amount)
	}
	if loaded.Language != "pt" || loaded.CategorySorting != entity.CategorySortingByName {
		t.Errorf("settings changed across round trip: language=%q sorting=%q", loaded.Language, loaded.CategorySorting)
	}
}

func TestStateRepositorySaveReplaces(t *testing.T) {
	store := newTestDBStore(t)
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

	var count int64
	if err := store.db.Model(&StateModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single document row, got %d", count)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Incomes) != 0 {
		t.Errorf("expected the second save to replace the document, got %d incomes", len(loaded.Incomes))
	}
}
