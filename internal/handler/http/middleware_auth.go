package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// AuthService.ParseToken and, on success, binds the account ID into the
// request context with [utils.WithAccountID].
//
// Every rejection is HTTP 401. A missing or malformed header gets
// [app.MsgUnauthenticated]; any token verification failure gets the single
// message [app.MsgInvalidToken]. The specific reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request without usable bearer token")
			utils.WriteError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithAccountID(ctx, token.AccountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively and exactly one token must
// follow it.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if strings.TrimSpace(authHeader) == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) == 1 && strings.EqualFold(parts[0], "bearer") {
		return "", ErrEmptyToken
	}
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
