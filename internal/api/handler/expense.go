// internal/api/handler/expense.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"expense-tracker-api/internal/api/types"
	"expense-tracker-api/internal/service"
	"expense-tracker-api/internal/util"
)

// ExpenseHandler handles HTTP requests for expense resources. Every route
// it serves sits behind the RequireAuth gate.
type ExpenseHandler struct {
	service service.ExpenseService
	logger  *slog.Logger
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func (h *ExpenseHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *ExpenseHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Server error"

	switch {
	case util.IsError(err, util.ErrMissingFields):
		statusCode = http.StatusBadRequest
		message = "Please provide title, amount and category"
	case util.IsError(err, util.ErrExpenseNotFound):
		statusCode = http.StatusNotFound
		message = "Expense not found"
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = "Invalid request body"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

// expenseID parses the {expenseID} URL parameter. A malformed value is
// indistinguishable from an unknown record and maps to not-found.
func (h *ExpenseHandler) expenseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "expenseID"), 10, 64)
	if err != nil {
		return 0, util.ErrExpenseNotFound
	}
	return id, nil
}

// List handles listing all expenses, most recent date first.
// GET /api/expenses
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, expenses)
}

// Create handles creating a new expense.
// POST /api/expenses
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	input := service.CreateExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
	}
	if req.Date != nil {
		input.Date = &req.Date.Time
	}

	expense, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, expense)
}

// Update handles a partial update of an existing expense.
// PUT /api/expenses/{expenseID}
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.expenseID(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	var req types.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	input := service.UpdateExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
	}
	if req.Date != nil {
		input.Date = &req.Date.Time
	}

	expense, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, expense)
}

// Delete handles removing an expense.
// DELETE /api/expenses/{expenseID}
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.expenseID(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "Expense deleted"})
}

// Summary handles the aggregated spending view.
// GET /api/expenses/summary
func (h *ExpenseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, summary)
}
