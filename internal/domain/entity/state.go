package entity

import (
	"sort"

	"github.com/google/uuid"

	"github.com/expense-planner/backend/internal/domain/calendar"
)

// CategorySorting values accepted by the presentation layer.
const (
	CategorySortingManual = "manual"
	CategorySortingByName = "name"
)

// State is the whole collection bundle the persistence layer reads and
// writes as a single document. Entities are immutable-by-replacement: an
// update swaps the stored value for a new one keyed on id.
type State struct {
	Expenses        []*Expense
	Incomes         []*Income
	Categories      []*Category
	CreditCards     []*CreditCard
	Reserves        []*Reserve
	LastAccessDate  *calendar.Date
	Language        string
	CategorySorting string
}

// NewState creates an empty state with the reserved fallback category.
func NewState() *State {
	state := &State{
		Language:        "en",
		CategorySorting: CategorySortingManual,
	}
	state.Normalize()
	return state
}

// Normalize enforces the fallback-category invariant after every load:
// exactly one category holds the reserved name, and enabled categories carry
// a dense 0-based order with the fallback ranked last. Loader-enforced here
// so consumption sites never have to find-or-create the bucket themselves.
func (s *State) Normalize() {
	var fallback *Category
	kept := s.Categories[:0]
	for _, category := range s.Categories {
		if category.IsFallback() {
			if fallback != nil {
				continue // Drop duplicate reserved-name categories.
			}
			fallback = category
		}
		kept = append(kept, category)
	}
	s.Categories = kept

	if fallback == nil {
		fallback = NewFallbackCategory(len(s.Categories))
		s.Categories = append(s.Categories, fallback)
	}
	s.reorderCategories()
}

// reorderCategories assigns dense 0-based order numbers to enabled
// categories, preserving relative order and keeping the fallback last.
func (s *State) reorderCategories() {
	sort.SliceStable(s.Categories, func(i, j int) bool {
		a, b := s.Categories[i], s.Categories[j]
		if a.IsFallback() != b.IsFallback() {
			return b.IsFallback()
		}
		return a.OrderNumber < b.OrderNumber
	})
	rank := 0
	for _, category := range s.Categories {
		if category.IsDisabled {
			continue
		}
		category.OrderNumber = rank
		rank++
	}
}

// FallbackCategory returns the reserved fallback category. Normalize
// guarantees it exists.
func (s *State) FallbackCategory() *Category {
	for _, category := range s.Categories {
		if category.IsFallback() {
			return category
		}
	}
	return nil
}

// CategoryByID returns the category with the given id, or nil.
func (s *State) CategoryByID(id uuid.UUID) *Category {
	for _, category := range s.Categories {
		if category.ID == id {
			return category
		}
	}
	return nil
}

// CategoryByName returns the category with the given name, or nil.
func (s *State) CategoryByName(name string) *Category {
	for _, category := range s.Categories {
		if category.Name == name {
			return category
		}
	}
	return nil
}

// CreditCardByID returns the credit card with the given id, or nil.
func (s *State) CreditCardByID(id uuid.UUID) *CreditCard {
	for _, card := range s.CreditCards {
		if card.ID == id {
			return card
		}
	}
	return nil
}

// ExpenseByID returns the expense with the given id, or nil.
func (s *State) ExpenseByID(id uuid.UUID) *Expense {
	for _, expense := range s.Expenses {
		if expense.ID == id {
			return expense
		}
	}
	return nil
}

// IncomeByID returns the income with the given id, or nil.
func (s *State) IncomeByID(id uuid.UUID) *Income {
	for _, income := range s.Incomes {
		if income.ID == id {
			return income
		}
	}
	return nil
}

// ReserveByID returns the reserve with the given id, or nil.
func (s *State) ReserveByID(id uuid.UUID) *Reserve {
	for _, reserve := range s.Reserves {
		if reserve.ID == id {
			return reserve
		}
	}
	return nil
}

// ReplaceExpense swaps the stored expense with the same id for the given
// value. It reports whether a matching expense existed.
func (s *State) ReplaceExpense(expense *Expense) bool {
	for i, existing := range s.Expenses {
		if existing.ID == expense.ID {
			s.Expenses[i] = expense
			return true
		}
	}
	return false
}

// ReplaceIncome swaps the stored income with the same id for the given value.
func (s *State) ReplaceIncome(income *Income) bool {
	for i, existing := range s.Incomes {
		if existing.ID == income.ID {
			s.Incomes[i] = income
			return true
		}
	}
	return false
}

// ReplaceCategory swaps the stored category with the same id for the given value.
func (s *State) ReplaceCategory(category *Category) bool {
	for i, existing := range s.Categories {
		if existing.ID == category.ID {
			s.Categories[i] = category
			return true
		}
	}
	return false
}

// ReplaceCreditCard swaps the stored card with the same id for the given value.
func (s *State) ReplaceCreditCard(card *CreditCard) bool {
	for i, existing := range s.CreditCards {
		if existing.ID == card.ID {
			s.CreditCards[i] = card
			return true
		}
	}
	return false
}

// ReplaceReserve swaps the stored reserve with the same id for the given value.
func (s *State) ReplaceReserve(reserve *Reserve) bool {
	for i, existing := range s.Reserves {
		if existing.ID == reserve.ID {
			s.Reserves[i] = reserve
			return true
		}
	}
	return false
}

// RemoveExpense removes the expense with the given id. When the expense
// belongs to an installment series the whole series is removed, keeping the
// contiguous 1..N sibling invariant intact.
func (s *State) RemoveExpense(id uuid.UUID) bool {
	expense := s.ExpenseByID(id)
	if expense == nil {
		return false
	}
	if expense.ExpenseInstallmentID != nil {
		s.RemoveInstallmentSeries(*expense.ExpenseInstallmentID)
		return true
	}
	kept := s.Expenses[:0]
	for _, existing := range s.Expenses {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.Expenses = kept
	return true
}

// RemoveInstallmentSeries removes every expense in the given series.
func (s *State) RemoveInstallmentSeries(seriesID uuid.UUID) {
	kept := s.Expenses[:0]
	for _, existing := range s.Expenses {
		if existing.ExpenseInstallmentID == nil || *existing.ExpenseInstallmentID != seriesID {
			kept = append(kept, existing)
		}
	}
	s.Expenses = kept
}

// RemoveIncome removes the income with the given id.
func (s *State) RemoveIncome(id uuid.UUID) bool {
	for i, existing := range s.Incomes {
		if existing.ID == id {
			s.Incomes = append(s.Incomes[:i], s.Incomes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCategory removes the category with the given id.
func (s *State) RemoveCategory(id uuid.UUID) bool {
	for i, existing := range s.Categories {
		if existing.ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCreditCard removes the credit card with the given id.
func (s *State) RemoveCreditCard(id uuid.UUID) bool {
	for i, existing := range s.CreditCards {
		if existing.ID == id {
			s.CreditCards = append(s.CreditCards[:i], s.CreditCards[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveReserve removes the reserve with the given id.
func (s *State) RemoveReserve(id uuid.UUID) bool {
	for i, existing := range s.Reserves {
		if existing.ID == id {
			s.Reserves = append(s.Reserves[:i], s.Reserves[i+1:]...)
			return true
		}
	}
	return false
}

// CategoryInUse reports whether any expense references the category.
func (s *State) CategoryInUse(id uuid.UUID) bool {
	for _, expense := range s.Expenses {
		if expense.CategoryID == id {
			return true
		}
	}
	return false
}

// CreditCardInUse reports whether any expense references the card.
func (s *State) CreditCardInUse(id uuid.UUID) bool {
	for _, expense := range s.Expenses {
		if expense.CreditCardID != nil && *expense.CreditCardID == id {
			return true
		}
	}
	return false
}

// InstallmentSiblings returns all expenses in the given series ordered by
// installment number.
func (s *State) InstallmentSiblings(seriesID uuid.UUID) []*Expense {
	var siblings []*Expense
	for _, expense := range s.Expenses {
		if expense.ExpenseInstallmentID != nil && *expense.ExpenseInstallmentID == seriesID {
			siblings = append(siblings, expense)
		}
	}
	sort.Slice(siblings, func(i, j int) bool {
		return siblings[i].InstallmentNumber < siblings[j].InstallmentNumber
	})
	return siblings
}
