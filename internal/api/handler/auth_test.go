// internal/api/handler/auth_test.go
package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"expense-tracker-api/internal/domain"
	"expense-tracker-api/internal/util"
)

func authRouter(svc *MockAuthService) http.Handler {
	h := NewAuthHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)
	return r
}

func TestRegisterHandler_Success(t *testing.T) {
	svc := new(MockAuthService)
	router := authRouter(svc)

	user := &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: "bcrypt-hash"}
	svc.On("Register", mock.Anything, "Alice", "alice@example.com", "hunter22").Return("signed-token", user, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", `{"name":"Alice","email":"alice@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"token":"signed-token"`)
	assert.Contains(t, body, `"email":"alice@example.com"`)
	// The credential secret never appears in responses.
	require.NotContains(t, body, "bcrypt-hash")
	require.NotContains(t, body, "password")
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	svc := new(MockAuthService)
	router := authRouter(svc)

	svc.On("Register", mock.Anything, "", "alice@example.com", "hunter22").Return("", nil, util.ErrMissingFields)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", `{"email":"alice@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Please provide name, email and password"}`, rec.Body.String())
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	svc := new(MockAuthService)
	router := authRouter(svc)

	svc.On("Register", mock.Anything, "Alice", "alice@example.com", "hunter22").Return("", nil, util.ErrDuplicateEmail)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", `{"name":"Alice","email":"alice@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email already registered"}`, rec.Body.String())
}

func TestLoginHandler_Success(t *testing.T) {
	svc := new(MockAuthService)
	router := authRouter(svc)

	user := &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	svc.On("Login", mock.Anything, "alice@example.com", "hunter22").Return("signed-token", user, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	svc := new(MockAuthService)
	router := authRouter(svc)

	svc.On("Login", mock.Anything, "alice@example.com", "wrong").Return("", nil, util.ErrInvalidCredentials)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())
}

func TestLoginHandler_MalformedBody(t *testing.T) {
	svc := new(MockAuthService)
	router := authRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}
