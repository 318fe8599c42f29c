// internal/domain/expense.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary values
)

func init() {
	// Amounts are serialized as plain JSON numbers, matching the persisted
	// record layout {id, title, amount, category, date, createdAt, updatedAt}.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense represents a single expense record.
// The service layer guarantees that a persisted expense always has a
// non-empty title, a non-empty category, and an amount.
type Expense struct {
	ID        int64           `db:"id" json:"id"`             // Primary key, BIGSERIAL in DB
	Title     string          `db:"title" json:"title"`       // Non-empty
	Amount    decimal.Decimal `db:"amount" json:"amount"`     // Signed, NUMERIC(20, 4) in DB; zero and negative allowed
	Category  string          `db:"category" json:"category"` // Free text, not restricted to a fixed vocabulary
	Date      time.Time       `db:"date" json:"date"`         // Calendar timestamp, defaults to creation time
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// NewExpense creates a new Expense instance. A zero date defaults to the
// current time.
func NewExpense(title string, amount decimal.Decimal, category string, date time.Time) *Expense {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	return &Expense{
		Title:     title,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryTotal is an aggregated spending row for one category.
type CategoryTotal struct {
	Category string          `db:"category" json:"category"`
	Total    decimal.Decimal `db:"total" json:"total"`
	Count    int64           `db:"count" json:"count"`
}
