package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", wantToken: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", wantToken: "abc"},
		{name: "empty", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "blank", header: "   ", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrEmptyToken},
		{name: "scheme with trailing space", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
		{name: "too many parts", header: "Bearer abc def", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthMiddleware_BindsAccount(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &fakeAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				assert.Equal(t, "good", tokenString)
				return models.Token{AccountID: "acc-42"}, nil
			},
		},
	})

	var gotAccount string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccount, _ = utils.AccountIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := injectNopLogger(newRequest(http.MethodGet, "/notes"))
	req.Header.Set("Authorization", "Bearer good")
	rec := newRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "acc-42", gotAccount)
}

func TestAuthMiddleware_RejectsWithoutCallingNext(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &fakeAuthService{
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrUnauthenticated
			},
		},
	})

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	for _, header := range []string{"", "Bearer", "Token abc", "Bearer expired"} {
		req := injectNopLogger(newRequest(http.MethodGet, "/notes"))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := newRecorder()

		h.auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
	assert.False(t, called)
}
