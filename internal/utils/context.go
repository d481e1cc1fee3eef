// Package utils provides small helpers shared by the server and the client:
// context keys for the authenticated account, JSON response writing, ID
// generation and the resty-based HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key under which the auth middleware stores the
// authenticated account ID. Use [WithAccountID] and [AccountIDFromContext]
// instead of touching the key directly.
var AccountIDCtxKey = contextKey("accountID")

// WithAccountID returns a copy of ctx bound to the given account ID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}

// AccountIDFromContext retrieves the authenticated account ID from ctx.
//
// ok is false when the value is missing, has an unexpected type, or is empty.
//
// Example usage:
//
//	accountID, ok := utils.AccountIDFromContext(r.Context())
//	if !ok {
//	    // request did not pass through the auth middleware
//	}
func AccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	if !ok || accountID == "" {
		return "", false
	}
	return accountID, true
}
