package jwtsession

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"patitas-eternas/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims es el payload de los tokens de sesión propios (HS256).
type sessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier valida tokens firmados con el secreto compartido.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	if len(strings.TrimSpace(secret)) < 16 {
		return nil, errors.New("jwtsession: secret must have at least 16 characters")
	}
	return &Verifier{secret: []byte(secret), now: time.Now}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	var c sessionClaims
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), &c,
		func(t *jwt.Token) (any, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil || !parsed.Valid {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	sub := strings.TrimSpace(c.Subject)
	if sub == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing sub", auth.ErrInvalidToken)
	}
	return auth.Claims{
		UserID: sub,
		Email:  c.Email,
		Name:   c.Name,
		Role:   c.Role,
	}, nil
}

// Sign emite un token de sesión para claims. Lo usan cmd/initdb y los tests.
func (v *Verifier) Sign(claims auth.Claims, ttl time.Duration) (string, error) {
	now := v.now()
	c := sessionClaims{
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("jwtsession: sign: %w", err)
	}
	return signed, nil
}
