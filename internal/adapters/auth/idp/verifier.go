package idp

import (
	"context"
	"fmt"

	"patitas-eternas/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier contra el IdP remoto.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("idp verify failed: %w", err)
	}
	return claims, nil
}
