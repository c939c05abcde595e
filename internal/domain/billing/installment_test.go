package billing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
	"github.com/google/uuid"
)

func testCard(closingDay, dueDay int) *entity.CreditCard {
	return entity.NewCreditCard("test card", closingDay, dueDay, calendar.MustParse("2030-12-01"))
}

func TestExpandInstallmentsThreeWaySplit(t *testing.T) {
	got := ExpandInstallments(ExpandInput{
		Description:  "new laptop",
		TotalAmount:  decimal.NewFromInt(1000),
		Count:        3,
		PurchaseDate: calendar.MustParse("2024-01-20"),
		CategoryID:   uuid.New(),
		Card:         testCard(25, 10),
	})

	if len(got) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(got))
	}

	wantAmounts := []string{"333.34", "333.33", "333.33"}
	wantDates := []string{"2024-01-20", "2024-02-20", "2024-03-20"}
	wantExecutions := []string{"2024-02-10", "2024-03-10", "2024-04-10"}

	for i, installment := range got {
		if installment.Amount.StringFixed(2) != wantAmounts[i] {
			t.Errorf("installment %d amount = %s, want %s", i+1, installment.Amount, wantAmounts[i])
		}
		if installment.Date.String() != wantDates[i] {
			t.Errorf("installment %d date = %s, want %s", i+1, installment.Date, wantDates[i])
		}
		if installment.ExecutionDate == nil {
			t.Fatalf("installment %d missing execution date", i+1)
		}
		if installment.ExecutionDate.String() != wantExecutions[i] {
			t.Errorf("installment %d execution date = %s, want %s", i+1, installment.ExecutionDate, wantExecutions[i])
		}
		if installment.InstallmentNumber != i+1 {
			t.Errorf("installment %d carries number %d", i+1, installment.InstallmentNumber)
		}
		if installment.InstallmentQuantity != 3 {
			t.Errorf("installment %d carries quantity %d, want 3", i+1, installment.InstallmentQuantity)
		}
		if !installment.TotalAmount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("installment %d carries total %s, want 1000", i+1, installment.TotalAmount)
		}
		if installment.IsPaid {
			t.Errorf("installment %d created already paid", i+1)
		}
		if installment.ExpenseInstallmentID == nil || *installment.ExpenseInstallmentID != *got[0].ExpenseInstallmentID {
			t.Errorf("installment %d does not share the series id", i+1)
		}
	}
}

func TestExpandInstallmentsSumInvariant(t *testing.T) {
	totals := []string{"1000", "100", "200", "0.05", "999.99", "73.27"}
	counts := []int{2, 3, 6, 7, 12, 11}

	for _, totalStr := range totals {
		for _, count := range counts {
			total := decimal.RequireFromString(totalStr)
			got := ExpandInstallments(ExpandInput{
				Description:  "split purchase",
				TotalAmount:  total,
				Count:        count,
				PurchaseDate: calendar.MustParse("2024-03-15"),
				CategoryID:   uuid.New(),
				Card:         testCard(10, 20),
			})

			if len(got) != count {
				t.Fatalf("total=%s count=%d: got %d installments", totalStr, count, len(got))
			}

			sum := decimal.Zero
			seen := make(map[int]bool, count)
			for _, installment := range got {
				sum = sum.Add(installment.Amount)
				if seen[installment.InstallmentNumber] {
					t.Fatalf("total=%s count=%d: duplicate installment number %d", totalStr, count, installment.InstallmentNumber)
				}
				seen[installment.InstallmentNumber] = true
			}
			if !sum.Equal(total) {
				t.Errorf("total=%s count=%d: installments sum to %s", totalStr, count, sum)
			}
			for n := 1; n <= count; n++ {
				if !seen[n] {
					t.Errorf("total=%s count=%d: missing installment number %d", totalStr, count, n)
				}
			}
		}
	}
}

func TestExpandInstallmentsNegativeRemainder(t *testing.T) {
	// 200/3 rounds up to 66.67; the first installment absorbs the -0.01.
	got := ExpandInstallments(ExpandInput{
		Description:  "rounds up",
		TotalAmount:  decimal.NewFromInt(200),
		Count:        3,
		PurchaseDate: calendar.MustParse("2024-05-02"),
		CategoryID:   uuid.New(),
		Card:         testCard(25, 10),
	})

	if got[0].Amount.StringFixed(2) != "66.66" {
		t.Errorf("first installment = %s, want 66.66", got[0].Amount)
	}
	if got[1].Amount.StringFixed(2) != "66.67" || got[2].Amount.StringFixed(2) != "66.67" {
		t.Errorf("later installments = %s, %s, want 66.67 each", got[1].Amount, got[2].Amount)
	}
}

func TestExpandInstallmentsExecutionChainStaysIncreasing(t *testing.T) {
	// closingDay > dueDay puts each due date in the month after its closing;
	// the chained advance must still produce strictly increasing executions.
	got := ExpandInstallments(ExpandInput{
		Description:  "chained executions",
		TotalAmount:  decimal.NewFromInt(600),
		Count:        12,
		PurchaseDate: calendar.MustParse("2024-01-31"),
		CategoryID:   uuid.New(),
		Card:         testCard(28, 5),
	})

	for i := 1; i < len(got); i++ {
		prev, curr := got[i-1].ExecutionDate, got[i].ExecutionDate
		if !curr.After(*prev) {
			t.Fatalf("execution %d (%s) not after execution %d (%s)", i+1, curr, i, prev)
		}
		if curr.Day != 5 && curr.Day != calendar.DaysInMonth(curr.Year, curr.Month) {
			t.Fatalf("execution %d lands on day %d, expected due day or clamped month end", i+1, curr.Day)
		}
	}
}

func TestExpandInstallmentsDateClamping(t *testing.T) {
	got := ExpandInstallments(ExpandInput{
		Description:  "month-end purchase",
		TotalAmount:  decimal.NewFromInt(300),
		Count:        3,
		PurchaseDate: calendar.MustParse("2024-01-31"),
		CategoryID:   uuid.New(),
		Card:         testCard(25, 10),
	})

	wantDates := []string{"2024-01-31", "2024-02-29", "2024-03-31"}
	for i, installment := range got {
		if installment.Date.String() != wantDates[i] {
			t.Errorf("installment %d date = %s, want %s", i+1, installment.Date, wantDates[i])
		}
	}
}

func TestExpandInstallmentsShortCircuits(t *testing.T) {
	t.Run("single installment", func(t *testing.T) {
		got := ExpandInstallments(ExpandInput{
			Description:  "one-off",
			TotalAmount:  decimal.NewFromInt(50),
			Count:        1,
			PurchaseDate: calendar.MustParse("2024-01-20"),
			CategoryID:   uuid.New(),
			Card:         testCard(25, 10),
		})

		if len(got) != 1 {
			t.Fatalf("expected a single expense, got %d", len(got))
		}
		expense := got[0]
		if expense.ExpenseInstallmentID != nil {
			t.Error("single expense should carry no installment series id")
		}
		if expense.ExecutionDate == nil || expense.ExecutionDate.String() != "2024-02-10" {
			t.Errorf("execution date = %v, want 2024-02-10", expense.ExecutionDate)
		}
		if !expense.Amount.Equal(decimal.NewFromInt(50)) {
			t.Errorf("amount = %s, want 50", expense.Amount)
		}
	})

	t.Run("no card attached", func(t *testing.T) {
		got := ExpandInstallments(ExpandInput{
			Description:  "cash purchase",
			TotalAmount:  decimal.NewFromInt(90),
			Count:        3,
			PurchaseDate: calendar.MustParse("2024-01-20"),
			CategoryID:   uuid.New(),
		})

		if len(got) != 1 {
			t.Fatalf("expected a single expense, got %d", len(got))
		}
		if got[0].ExecutionDate != nil {
			t.Error("cash expense should carry no execution date")
		}
		if got[0].CreditCardID != nil {
			t.Error("cash expense should carry no card reference")
		}
	})
}
