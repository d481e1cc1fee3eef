package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestInit_RegistersRoutes(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	want := map[string][]string{
		"/":              {http.MethodGet},
		"/version":       {http.MethodGet},
		"/auth/register": {http.MethodPost},
		"/auth/login":    {http.MethodPost},
		"/notes":         {http.MethodGet, http.MethodPost},
		"/notes/{id}":    {http.MethodGet, http.MethodPut, http.MethodDelete},
	}

	got := map[string][]string{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[route] = append(got[route], method)
		return nil
	})
	require.NoError(t, err)

	for route, methods := range want {
		assert.ElementsMatch(t, methods, got[route], route)
	}
}

func TestInit_UnknownMethodIsNotFound(t *testing.T) {
	router := newTestHandler(&service.Services{AuthService: acceptingAuth()}).Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPatch, "/notes"},
		{http.MethodPost, "/notes/n1"},
		{http.MethodGet, "/auth/login"},
		{http.MethodDelete, "/"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, "", "alice")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

// newInMemoryRouter wires the real services over in-memory repositories.
func newInMemoryRouter(t *testing.T) http.Handler {
	t.Helper()

	storages := &store.Storages{
		AccountRepository: store.NewMemoryAccountRepository(),
		NoteRepository:    store.NewMemoryNoteRepository(),
	}
	services, err := service.NewServices(storages, config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      config.DefaultTokenIssuer,
		PasswordHashCost: bcrypt.MinCost,
		Version:          "test",
	}, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, logger.Nop()).Init()
}

func registerAndLogin(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	body := `{"email":"` + email + `","password":"` + password + `"}`

	rec := doJSON(t, router, http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/auth/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token := decodeBody[models.LoginResponse](t, rec).Token
	require.NotEmpty(t, token)
	return token
}

func TestEndToEnd_NotesAreIsolatedPerAccount(t *testing.T) {
	router := newInMemoryRouter(t)

	alice := registerAndLogin(t, router, "alice@example.com", "alice-pw")
	bob := registerAndLogin(t, router, "bob@example.com", "bob-pw")

	rec := doJSON(t, router, http.MethodPost, "/notes", `{"title":"Groceries","content":"milk, eggs"}`, alice)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	note := decodeBody[models.Note](t, rec)
	require.NotEmpty(t, note.ID)

	rec = doJSON(t, router, http.MethodGet, "/notes", "", alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Note](t, rec), 1)

	rec = doJSON(t, router, http.MethodGet, "/notes", "", bob)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec = doJSON(t, router, method, "/notes/"+note.ID, `{"title":"hijacked"}`, bob)
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.Equal(t, app.MsgNoteNotFound, decodeBody[models.ErrorResponse](t, rec).Error)
	}

	rec = doJSON(t, router, http.MethodPut, "/notes/"+note.ID, `{"pinned":true}`, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Note](t, rec)
	assert.Equal(t, "Groceries", updated.Title)
	assert.True(t, updated.Pinned)

	rec = doJSON(t, router, http.MethodDelete, "/notes/"+note.ID, "", alice)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/notes/"+note.ID, "", alice)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndToEnd_RegistrationRules(t *testing.T) {
	router := newInMemoryRouter(t)

	registerAndLogin(t, router, "alice@example.com", "pw")

	rec := doJSON(t, router, http.MethodPost, "/auth/register", `{"email":"ALICE@example.com ","password":"other"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgAccountAlreadyExists, decodeBody[models.ErrorResponse](t, rec).Error)

	rec = doJSON(t, router, http.MethodPost, "/auth/register", `{"email":"not-an-email","password":"pw"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/register", `{"email":"carol@example.com","password":""}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndToEnd_LoginFailuresAreIndistinguishable(t *testing.T) {
	router := newInMemoryRouter(t)
	registerAndLogin(t, router, "alice@example.com", "right")

	wrongPassword := doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`, "")
	unknownEmail := doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"nobody@example.com","password":"right"}`, "")

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestEndToEnd_TamperedToken(t *testing.T) {
	router := newInMemoryRouter(t)
	token := registerAndLogin(t, router, "alice@example.com", "pw")

	tampered := token[:len(token)-2] + "xx"
	rec := doJSON(t, router, http.MethodGet, "/notes", "", tampered)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgInvalidToken, decodeBody[models.ErrorResponse](t, rec).Error)
}
