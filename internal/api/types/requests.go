// internal/api/types/requests.go
package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a timestamp that unmarshals from either an RFC 3339 timestamp
// or a bare YYYY-MM-DD calendar date, since clients send both forms.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// CreateExpenseRequest is the request body for creating an expense.
// Amount is a pointer so a missing amount is distinguishable from zero.
type CreateExpenseRequest struct {
	Title    string           `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category string           `json:"category"`
	Date     *Date            `json:"date"`
}

// UpdateExpenseRequest is the request body for a partial expense update.
// Absent fields leave the stored values untouched.
type UpdateExpenseRequest struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category"`
	Date     *Date            `json:"date"`
}

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
