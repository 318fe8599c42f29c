// internal/repository/postgres/expense_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense-tracker-api/internal/domain"
	"expense-tracker-api/internal/repository"
	"expense-tracker-api/internal/util"

	"github.com/jmoiron/sqlx"
)

// ExpenseRepository implements repository.ExpenseRepository for PostgreSQL.
type ExpenseRepository struct {
	// Methods receive a DBExecutor directly instead of holding *sqlx.DB.
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *sqlx.DB) repository.ExpenseRepository {
	return &ExpenseRepository{}
}

// CreateExpense inserts a new expense record and assigns its generated ID.
func (r *ExpenseRepository) CreateExpense(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	query := `INSERT INTO expenses (title, amount, category, date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		expense.Title,
		expense.Amount,
		expense.Category,
		expense.Date,
		expense.CreatedAt,
		expense.UpdatedAt,
	).Scan(&expense.ID)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses ordered by date descending.
// The secondary sort on id keeps insertion order among equal dates.
func (r *ExpenseRepository) ListExpenses(ctx context.Context, q repository.DBExecutor) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	query := `SELECT id, title, amount, category, date, created_at, updated_at
              FROM expenses
              ORDER BY date DESC, id ASC`
	if err := q.SelectContext(ctx, &expenses, query); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// GetExpenseByID retrieves an expense by its ID.
func (r *ExpenseRepository) GetExpenseByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Expense, error) {
	var expense domain.Expense
	query := `SELECT id, title, amount, category, date, created_at, updated_at FROM expenses WHERE id = $1`
	err := q.GetContext(ctx, &expense, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID %d: %w", id, err)
	}
	return &expense, nil
}

// UpdateExpense persists the full state of an existing expense.
// The write is last-write-wins: no version check guards concurrent updates.
func (r *ExpenseRepository) UpdateExpense(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	query := `UPDATE expenses
              SET title = $1, amount = $2, category = $3, date = $4, updated_at = $5
              WHERE id = $6`
	result, err := q.ExecContext(ctx, query,
		expense.Title,
		expense.Amount,
		expense.Category,
		expense.Date,
		expense.UpdatedAt,
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", expense.ID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for expense %d: %w", expense.ID, err)
	}
	if rows == 0 {
		return util.ErrExpenseNotFound
	}
	return nil
}

// DeleteExpense removes an expense by its ID.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for expense %d: %w", id, err)
	}
	if rows == 0 {
		return util.ErrExpenseNotFound
	}
	return nil
}

// GetCategoryTotals aggregates spending per category, largest total first.
func (r *ExpenseRepository) GetCategoryTotals(ctx context.Context, q repository.DBExecutor) ([]domain.CategoryTotal, error) {
	totals := []domain.CategoryTotal{}
	query := `SELECT category, SUM(amount) AS total, COUNT(*) AS count
              FROM expenses
              GROUP BY category
              ORDER BY total DESC, category ASC`
	if err := q.SelectContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}
	return totals, nil
}
