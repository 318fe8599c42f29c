// internal/api/types/requests_test.go
package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T15:04:05Z"`), &d))
	assert.Equal(t, time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC), d.Time)
}

func TestDate_UnmarshalCalendarDate(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01"`), &d))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}

func TestDate_UnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestCreateExpenseRequest_MissingAmountStaysNil(t *testing.T) {
	var req CreateExpenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Coffee","category":"Food"}`), &req))
	assert.Nil(t, req.Amount)
	assert.Nil(t, req.Date)
}

func TestCreateExpenseRequest_ZeroAmountIsPresent(t *testing.T) {
	var req CreateExpenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Refund","amount":0,"category":"Misc"}`), &req))
	require.NotNil(t, req.Amount)
	assert.True(t, req.Amount.Equal(decimal.Zero))
}

func TestUpdateExpenseRequest_PartialBody(t *testing.T) {
	var req UpdateExpenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount":9.99}`), &req))
	require.NotNil(t, req.Amount)
	assert.Nil(t, req.Title)
	assert.Nil(t, req.Category)
	assert.Nil(t, req.Date)
}
