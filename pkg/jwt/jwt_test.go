package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", 1, 24)

	token, err := mgr.GenerateToken("user-1", "pete@purdue.edu", "Purdue Pete")
	assert.NoError(t, err)

	claims, err := mgr.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "pete@purdue.edu", claims.Email)
	assert.Equal(t, "Purdue Pete", claims.FullName)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	mgr := NewManager("secret-a", 1, 24)
	other := NewManager("secret-b", 1, 24)

	token, err := mgr.GenerateToken("user-1", "", "")
	assert.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", 0, 0)
	// Zero-hour TTL issues an already-expired token
	token, err := mgr.GenerateToken("user-1", "", "")
	assert.NoError(t, err)

	time.Sleep(time.Second)
	_, err = mgr.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", 1, 24)

	token, err := mgr.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	claims, err := mgr.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.FullName)
}
