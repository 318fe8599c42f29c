// internal/service/expense_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"expense-tracker-api/internal/domain"
	"expense-tracker-api/internal/repository"
	"expense-tracker-api/internal/util"

	"github.com/shopspring/decimal"
)

// CreateExpenseInput carries the fields for creating an expense.
// Amount is a pointer so a missing amount is distinguishable from zero:
// zero and negative amounts are valid values.
type CreateExpenseInput struct {
	Title    string
	Amount   *decimal.Decimal
	Category string
	Date     *time.Time
}

// UpdateExpenseInput carries a partial update. Nil fields retain the
// record's prior values.
type UpdateExpenseInput struct {
	Title    *string
	Amount   *decimal.Decimal
	Category *string
	Date     *time.Time
}

// ExpenseSummary is the aggregated view over all expense records.
type ExpenseSummary struct {
	Total      decimal.Decimal        `json:"total"`
	Count      int64                  `json:"count"`
	Categories []domain.CategoryTotal `json:"categories"`
}

// ExpenseService defines the interface for expense-related business logic.
// Every operation assumes the caller has already passed the authentication
// gate; the service itself is identity-agnostic.
type ExpenseService interface {
	List(ctx context.Context) ([]domain.Expense, error)
	Create(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error)
	Update(ctx context.Context, id int64, input UpdateExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (*ExpenseSummary, error)
}

// expenseService implements the ExpenseService interface.
type expenseService struct {
	dbExecutor  repository.DBExecutor
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(dbExecutor repository.DBExecutor, expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{
		dbExecutor:  dbExecutor,
		expenseRepo: expenseRepo,
	}
}

// List returns all expense records, most recent date first.
func (s *expenseService) List(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return expenses, nil
}

// Create validates the input, defaults the date to now when omitted, and
// persists a new expense. Title, amount, and category are all required;
// a zero or negative amount is accepted.
func (s *expenseService) Create(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	if input.Title == "" || input.Amount == nil || input.Category == "" {
		return nil, util.ErrMissingFields
	}

	var date time.Time
	if input.Date != nil {
		date = *input.Date
	}
	expense := domain.NewExpense(input.Title, *input.Amount, input.Category, date)

	if err := s.expenseRepo.CreateExpense(ctx, s.dbExecutor, expense); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return expense, nil
}

// Update merges the supplied fields over the existing record, re-validates
// the merged result, and persists it. Unspecified fields keep their prior
// values. Concurrent updates are last-write-wins.
func (s *expenseService) Update(ctx context.Context, id int64, input UpdateExpenseInput) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrExpenseNotFound) {
			return nil, util.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("update: failed to get expense %d: %w", id, err)
	}

	if input.Title != nil {
		expense.Title = *input.Title
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}

	// The merged record must satisfy the same constraints as creation.
	if expense.Title == "" || expense.Category == "" {
		return nil, util.ErrMissingFields
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := s.expenseRepo.UpdateExpense(ctx, s.dbExecutor, expense); err != nil {
		if util.IsError(err, util.ErrExpenseNotFound) {
			return nil, util.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("update: failed to update expense %d: %w", id, err)
	}
	return expense, nil
}

// Delete removes an expense by ID. There is no soft-delete and no
// cascading effect.
func (s *expenseService) Delete(ctx context.Context, id int64) error {
	if _, err := s.expenseRepo.GetExpenseByID(ctx, s.dbExecutor, id); err != nil {
		if util.IsError(err, util.ErrExpenseNotFound) {
			return util.ErrExpenseNotFound
		}
		return fmt.Errorf("delete: failed to get expense %d: %w", id, err)
	}

	if err := s.expenseRepo.DeleteExpense(ctx, s.dbExecutor, id); err != nil {
		if util.IsError(err, util.ErrExpenseNotFound) {
			return util.ErrExpenseNotFound
		}
		return fmt.Errorf("delete: failed to delete expense %d: %w", id, err)
	}
	return nil
}

// Summary aggregates spending across all records: grand total, record
// count, and per-category totals ordered largest first.
func (s *expenseService) Summary(ctx context.Context) (*ExpenseSummary, error) {
	totals, err := s.expenseRepo.GetCategoryTotals(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	summary := &ExpenseSummary{
		Total:      decimal.Zero,
		Categories: totals,
	}
	for _, ct := range totals {
		summary.Total = summary.Total.Add(ct.Total)
		summary.Count += ct.Count
	}
	return summary, nil
}
