// internal/repository/expense_repo.go
package repository

import (
	"context"

	"expense-tracker-api/internal/domain"
)

// ExpenseRepository defines the interface for expense data operations.
// Implementations provide single-record atomicity only: there are no
// cross-record transactions and no optimistic-concurrency checks, so
// concurrent updates to the same record are last-write-wins.
type ExpenseRepository interface {
	// CreateExpense inserts a new expense and assigns its generated ID.
	CreateExpense(ctx context.Context, q DBExecutor, expense *domain.Expense) error
	// ListExpenses returns all expenses ordered by date descending,
	// ties broken by insertion order.
	ListExpenses(ctx context.Context, q DBExecutor) ([]domain.Expense, error)
	// GetExpenseByID retrieves an expense by its ID.
	GetExpenseByID(ctx context.Context, q DBExecutor, id int64) (*domain.Expense, error)
	// UpdateExpense persists the full state of an existing expense.
	UpdateExpense(ctx context.Context, q DBExecutor, expense *domain.Expense) error
	// DeleteExpense removes an expense by its ID.
	DeleteExpense(ctx context.Context, q DBExecutor, id int64) error
	// GetCategoryTotals returns aggregated spending per category,
	// ordered by total descending.
	GetCategoryTotals(ctx context.Context, q DBExecutor) ([]domain.CategoryTotal, error)
}
