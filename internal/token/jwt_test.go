package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	u := uuid.New()

	tok, err := j.Generate(u, "alice@example.com")
	require.NoError(t, err)

	viewer, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, u, viewer.UserID)
	assert.Equal(t, "alice@example.com", viewer.Email)
	assert.Equal(t, time.Hour, j.TTL())
}

func TestJWT_WrongSecret(t *testing.T) {
	tok, err := NewJWT("secret", time.Hour).Generate(uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = NewJWT("other", time.Hour).Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", time.Minute)
	issuedAt := time.Now().Add(-time.Hour)
	j.now = func() time.Time { return issuedAt }

	tok, err := j.Generate(uuid.New(), "a@b.c")
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_TokenTypeMismatch(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    uuid.New(),
		TokenType: "refresh",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret", time.Hour).Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Garbage(t *testing.T) {
	_, err := NewJWT("secret", time.Hour).Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
