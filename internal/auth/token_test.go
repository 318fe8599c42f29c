// internal/auth/token_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-tracker-api/internal/domain"
	"expense-tracker-api/internal/util"
)

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret")
	user := &domain.User{ID: 42, Name: "Alice"}

	token, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), subject)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Issue(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Verify(token)
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret")

	for _, token := range []string{"", "not-a-jwt", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		_, err := tm.Verify(token)
		assert.ErrorIs(t, err, util.ErrInvalidToken, "token %q", token)
	}
}

func TestVerify_Tampered(t *testing.T) {
	tm := NewTokenManager("test-secret")
	token, err := tm.Issue(&domain.User{ID: 7})
	require.NoError(t, err)

	_, err = tm.Verify(token + "x")
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"sub": "42",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenManager(secret).Verify(token)
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

func TestVerify_RejectsUnsignedToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret").Verify(token)
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

func TestVerify_NonNumericSubject(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"sub": "not-a-number",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenManager(secret).Verify(token)
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

func TestVerify_MissingSubject(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenManager(secret).Verify(token)
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}
