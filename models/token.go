package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed session token together with the claims it carries.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) that clients send back in the
// "Authorization: Bearer" header.
type Token struct {
	// RegisteredClaims provides the standard claim set (sub, iat, exp, iss).
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is the owner identifier taken from the "sub" claim.
	AccountID string `json:"-"`
}

// ExpiresAtTime returns the "exp" claim as a time.Time, or the zero time
// when the claim is absent.
func (t Token) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
