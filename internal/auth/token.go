package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid. There is no refresh
// or revocation; expiry is the only way a token dies.
const TokenTTL = 7 * 24 * time.Hour

const minKeyLen = 32

// TokenService issues and verifies HS256-signed identity tokens. Tokens
// are self-contained: validity is signature + expiry, nothing is stored
// server-side.
type TokenService struct {
	key []byte
	ttl time.Duration
}

// NewTokenService fails on a short key so a misconfigured secret is a
// startup error, not a per-request one.
func NewTokenService(key []byte) (*TokenService, error) {
	if len(key) < minKeyLen {
		return nil, fmt.Errorf("token signing key must be at least %d bytes, got %d", minKeyLen, len(key))
	}
	return &TokenService{key: key, ttl: TokenTTL}, nil
}

// Issue signs a token whose subject is userID, expiring in TokenTTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the token's subject and true if the signature checks
// out and the token is unexpired. Any malformed, tampered or expired
// token yields ok=false — callers treat that as a plain 401, never as
// an internal failure.
func (s *TokenService) Verify(raw string) (string, bool) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
