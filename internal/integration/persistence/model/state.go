// Package model defines the persisted document schema for the state store.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-planner/backend/internal/domain/calendar"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// StateDocument is the single JSON document the whole state serializes to.
// Schema evolution is implicit: new optional fields default to absent, so
// documents written by older builds still load.
type StateDocument struct {
	Expenses        []ExpenseRecord    `json:"expenses"`
	Incomes         []IncomeRecord     `json:"incomes"`
	Categories      []CategoryRecord   `json:"categories"`
	CreditCards     []CreditCardRecord `json:"creditCards"`
	Reserves        []ReserveRecord    `json:"reserves"`
	LastAccessDate  *calendar.Date     `json:"lastAccessDate,omitempty"`
	Language        string             `json:"language,omitempty"`
	CategorySorting string             `json:"categorySorting,omitempty"`
}

// ExpenseRecord is the document form of an expense.
type ExpenseRecord struct {
	ID                   uuid.UUID       `json:"id"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	CategoryID           uuid.UUID       `json:"categoryId"`
	Date                 calendar.Date   `json:"date"`
	CreditCardID         *uuid.UUID      `json:"creditCardId,omitempty"`
	ExecutionDate        *calendar.Date  `json:"executionDate,omitempty"`
	ExpenseInstallmentID *uuid.UUID      `json:"expenseInstallmentId,omitempty"`
	InstallmentQuantity  int             `json:"installmentQuantity,omitempty"`
	InstallmentNumber    int             `json:"installmentNumber,omitempty"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	IsPaid               bool            `json:"isPaid"`
	IsRecurring          bool            `json:"isRecurring"`
}

// IncomeRecord is the document form of an income.
type IncomeRecord struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        calendar.Date   `json:"date"`
	IsPaused    bool            `json:"isPaused"`
}

// CategoryRecord is the document form of a category.
type CategoryRecord struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	OrderNumber int             `json:"orderNumber"`
	IsDisabled  bool            `json:"isDisabled,omitempty"`
}

// CreditCardRecord is the document form of a credit card.
type CreditCardRecord struct {
	ID           uuid.UUID     `json:"id"`
	Description  string        `json:"description"`
	ClosingDay   int           `json:"closingDay"`
	DueDay       int           `json:"dueDay"`
	GoodThruDate calendar.Date `json:"goodThruDate"`
	IsPaused     bool          `json:"isPaused,omitempty"`
}

// ReserveRecord is the document form of a reserve.
type ReserveRecord struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Amount          decimal.Decimal  `json:"amount"`
	CreationDate    calendar.Date    `json:"creationDate"`
	DissolutionDate *calendar.Date   `json:"dissolutionDate,omitempty"`
	InterestRate    *decimal.Decimal `json:"interestRate,omitempty"`
}

// StateFromEntity creates a StateDocument from the domain state.
func StateFromEntity(state *entity.State) *StateDocument {
	doc := &StateDocument{
		Expenses:        make([]ExpenseRecord, len(state.Expenses)),
		Incomes:         make([]IncomeRecord, len(state.Incomes)),
		Categories:      make([]CategoryRecord, len(state.Categories)),
		CreditCards:     make([]CreditCardRecord, len(state.CreditCards)),
		Reserves:        make([]ReserveRecord, len(state.Reserves)),
		LastAccessDate:  state.LastAccessDate,
		Language:        state.Language,
		CategorySorting: state.CategorySorting,
	}
	for i, expense := range state.Expenses {
		doc.Expenses[i] = ExpenseRecord{
			ID:                   expense.ID,
			Description:          expense.Description,
			Amount:               expense.Amount,
			CategoryID:           expense.CategoryID,
			Date:                 expense.Date,
			CreditCardID:         expense.CreditCardID,
			ExecutionDate:        expense.ExecutionDate,
			ExpenseInstallmentID: expense.ExpenseInstallmentID,
			InstallmentQuantity:  expense.InstallmentQuantity,
			InstallmentNumber:    expense.InstallmentNumber,
			TotalAmount:          expense.TotalAmount,
			IsPaid:               expense.IsPaid,
			IsRecurring:          expense.IsRecurring,
		}
	}
	for i, income := range state.Incomes {
		doc.Incomes[i] = IncomeRecord{
			ID:          income.ID,
			Description: income.Description,
			Amount:      income.Amount,
			Date:        income.Date,
			IsPaused:    income.IsPaused,
		}
	}
	for i, category := range state.Categories {
		doc.Categories[i] = CategoryRecord{
			ID:          category.ID,
			Name:        category.Name,
			Budget:      category.Budget,
			OrderNumber: category.OrderNumber,
			IsDisabled:  category.IsDisabled,
		}
	}
	for i, card := range state.CreditCards {
		doc.CreditCards[i] = CreditCardRecord{
			ID:           card.ID,
			Description:  card.Description,
			ClosingDay:   card.ClosingDay,
			DueDay:       card.DueDay,
			GoodThruDate: card.GoodThruDate,
			IsPaused:     card.IsPaused,
		}
	}
	for i, reserve := range state.Reserves {
		doc.Reserves[i] = ReserveRecord{
			ID:              reserve.ID,
			Name:            reserve.Name,
			Amount:          reserve.Amount,
			CreationDate:    reserve.CreationDate,
			DissolutionDate: reserve.DissolutionDate,
			InterestRate:    reserve.InterestRate,
		}
	}
	return doc
}

// ToEntity converts the document back to the domain state.
func (d *StateDocument) ToEntity() *entity.State {
	state := &entity.State{
		Expenses:        make([]*entity.Expense, len(d.Expenses)),
		Incomes:         make([]*entity.Income, len(d.Incomes)),
		Categories:      make([]*entity.Category, len(d.Categories)),
		CreditCards:     make([]*entity.CreditCard, len(d.CreditCards)),
		Reserves:        make([]*entity.Reserve, len(d.Reserves)),
		LastAccessDate:  d.LastAccessDate,
		Language:        d.Language,
		CategorySorting: d.CategorySorting,
	}
	for i, record := range d.Expenses {
		state.Expenses[i] = &entity.Expense{
			ID:                   record.ID,
			Description:          record.Description,
			Amount:               record.Amount,
			CategoryID:           record.CategoryID,
			Date:                 record.Date,
			CreditCardID:         record.CreditCardID,
			ExecutionDate:        record.ExecutionDate,
			ExpenseInstallmentID: record.ExpenseInstallmentID,
			InstallmentQuantity:  record.InstallmentQuantity,
			InstallmentNumber:    record.InstallmentNumber,
			TotalAmount:          record.TotalAmount,
			IsPaid:               record.IsPaid,
			IsRecurring:          record.IsRecurring,
		}
	}
	for i, record := range d.Incomes {
		state.Incomes[i] = &entity.Income{
			ID:          record.ID,
			Description: record.Description,
			Amount:      record.Amount,
			Date:        record.Date,
			IsPaused:    record.IsPaused,
		}
	}
	for i, record := range d.Categories {
		state.Categories[i] = &entity.Category{
			ID:          record.ID,
			Name:        record.Name,
			Budget:      record.Budget,
			OrderNumber: record.OrderNumber,
			IsDisabled:  record.IsDisabled,
		}
	}
	for i, record := range d.CreditCards {
		state.CreditCards[i] = &entity.CreditCard{
			ID:           record.ID,
			Description:  record.Description,
			ClosingDay:   record.ClosingDay,
			DueDay:       record.DueDay,
			GoodThruDate: record.GoodThruDate,
			IsPaused:     record.IsPaused,
		}
	}
	for i, record := range d.Reserves {
		state.Reserves[i] = &entity.Reserve{
			ID:              record.ID,
			Name:            record.Name,
			Amount:          record.Amount,
			CreationDate:    record.CreationDate,
			DissolutionDate: record.DissolutionDate,
			InterestRate:    record.InterestRate,
		}
	}
	return state
}
