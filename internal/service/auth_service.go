// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"expense-tracker-api/internal/auth"
	"expense-tracker-api/internal/domain"
	"expense-tracker-api/internal/repository"
	"expense-tracker-api/internal/util"
)

// AuthService defines the interface for account and token operations.
// Register and Login are the one-shot issuance flow; VerifyToken and
// GetUserByID together back the per-request authentication gate.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	VerifyToken(token string) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, tokens *auth.TokenManager, bcryptCost int) AuthService {
	return &authService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account and returns a freshly minted token for it.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, util.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	user := domain.NewUser(name, email, string(hash))
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEmail) {
			return "", nil, util.ErrDuplicateEmail
		}
		return "", nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("register: %w", err)
	}
	return token, user, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return token, user, nil
}

// VerifyToken validates a bearer token and returns its subject user ID.
// Pure token verification only; the subject may no longer exist.
func (s *authService) VerifyToken(token string) (int64, error) {
	return s.tokens.Verify(token)
}

// GetUserByID resolves a token subject to a stored user.
func (s *authService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}
