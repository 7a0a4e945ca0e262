package token

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
)

// Claims are the identity fields carried by a session token.
type Claims struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Expiry returns the exp claim as unix seconds, or 0 when absent.
func (c *Claims) Expiry() int64 {
	if c == nil || c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Unix()
}

// Decode reads the claims of rawToken WITHOUT verifying its signature or expiry.
// The result is only fit for display; the API remains the source of truth.
func Decode(rawToken string) (*Claims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, apperrors.ErrEmptyToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawToken, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenDecode, err)
	}
	return claims, nil
}
