package jwtsession

import (
	"context"
	"testing"
	"time"

	"patitas-eternas/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef-patitas"

func TestSignAndVerify(t *testing.T) {
	v, err := NewVerifier(secret)
	require.NoError(t, err)

	want := auth.Claims{UserID: "u-1", Email: "admin@patitas.mx", Name: "Admin", Role: "admin"}
	token, err := v.Sign(want, time.Hour)
	require.NoError(t, err)

	got, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVerify_Rejects(t *testing.T) {
	v, err := NewVerifier(secret)
	require.NoError(t, err)

	expired, err := v.Sign(auth.Claims{UserID: "u-1"}, -time.Minute)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	other, err := NewVerifier("another-secret-of-16+")
	require.NoError(t, err)
	forged, err := other.Sign(auth.Claims{UserID: "u-1", Role: "admin"}, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "u-1", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), none)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-1"}).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), noExp)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	noSub, err := v.Sign(auth.Claims{}, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), noSub)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestNewVerifier_ShortSecret(t *testing.T) {
	_, err := NewVerifier("corto")
	assert.Error(t, err)
}
