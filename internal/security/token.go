// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the lifetime of every issued session token.
const SessionTTL = time.Hour

// TokenManager issues and verifies HS256-signed session tokens.
//
// Verification is a pure function of the token, the signing key and the
// clock; there is no server-side session state, so a token stays valid
// until it expires.
type TokenManager struct {
	signKey []byte
	issuer  string
	ttl     time.Duration
	now     func() time.Time
}

// TokenOption customises a [TokenManager].
type TokenOption func(*TokenManager)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.now = now
	}
}

// NewTokenManager constructs a [TokenManager] with the given signing key and
// issuer. The key is copied; later changes to the caller's configuration do
// not affect it. Returns [ErrEmptySignKey] if signKey is empty.
func NewTokenManager(signKey, issuer string, opts ...TokenOption) (*TokenManager, error) {
	if signKey == "" {
		return nil, ErrEmptySignKey
	}

	m := &TokenManager{
		signKey: []byte(signKey),
		issuer:  issuer,
		ttl:     SessionTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Issue creates a signed token for accountID with
//   - Subject   (sub): accountID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + [SessionTTL]
//   - Issuer    (iss): the configured issuer, if any
func (m *TokenManager) Issue(accountID string) (models.Token, error) {
	if accountID == "" {
		return models.Token{}, errors.New("empty account ID for token")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: signed, AccountID: accountID}, nil
}

// Verify checks tokenString and returns the account ID it was issued for.
//
// Errors:
//   - [ErrMalformedToken] if the token cannot be parsed or its claims are unusable;
//   - [ErrBadSignature] if the signature does not match or the algorithm is not HS256;
//   - [ErrTokenExpired] if now is at or after the "exp" claim.
func (m *TokenManager) Verify(tokenString string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.signKey, nil
	})
	if err != nil {
		return models.Token{}, classifyJWTError(err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrMalformedToken)
	}

	return models.Token{RegisteredClaims: *claims, SignedString: tokenString, AccountID: claims.Subject}, nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrBadSignature, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
}

// DecodeExpiryUnverified reads the "exp" claim WITHOUT checking the
// signature. It exists for clients that want to drop a session locally
// before the server starts rejecting it; never use the result for
// authorization.
func DecodeExpiryUnverified(tokenString string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: no exp claim", ErrMalformedToken)
	}

	return claims.ExpiresAt.Time, nil
}
