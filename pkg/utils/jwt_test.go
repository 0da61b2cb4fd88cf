package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSigner_RoundTrip(t *testing.T) {
	signer := NewTokenSigner("secret")
	accountID := uuid.New()

	token, err := signer.CreateToken(accountID, "key-1")
	require.NoError(t, err)

	claims, err := signer.ValidateToken(token)
	require.NoError(t, err)

	got, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
	assert.Equal(t, "key-1", claims.ID)
}

func TestTokenSigner_RejectsForeignSignature(t *testing.T) {
	token, err := NewTokenSigner("other").CreateToken(uuid.New(), "key-1")
	require.NoError(t, err)

	_, err = NewTokenSigner("secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenSigner_RejectsUnexpectedAlgorithm(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString(), ID: "k"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenSigner("secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenSigner_RejectsMissingKey(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenSigner("secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenSigner_RejectsGarbage(t *testing.T) {
	_, err := NewTokenSigner("secret").ValidateToken("not-a-token")
	assert.Error(t, err)
}
