package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ---- fake: AuthService ----

type fakeAuthService struct {
	registerFn    func(ctx context.Context, email, password string) (models.Account, error)
	loginFn       func(ctx context.Context, email, password string) (models.Account, error)
	createTokenFn func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, email, password string) (models.Account, error) {
	return f.registerFn(ctx, email, password)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (models.Account, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return f.createTokenFn(ctx, account)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

// acceptingAuth accepts any token and reports it as the account ID.
func acceptingAuth() *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return models.Token{AccountID: tokenString}, nil
		},
	}
}

// ---- fake: NoteService ----

type fakeNoteService struct {
	listFn   func(ctx context.Context, ownerID string) ([]models.Note, error)
	getFn    func(ctx context.Context, ownerID, noteID string) (models.Note, error)
	createFn func(ctx context.Context, ownerID string, request models.CreateNoteRequest) (models.Note, error)
	updateFn func(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error)
	deleteFn func(ctx context.Context, ownerID, noteID string) error
}

func (f *fakeNoteService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	return f.listFn(ctx, ownerID)
}

func (f *fakeNoteService) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	return f.getFn(ctx, ownerID, noteID)
}

func (f *fakeNoteService) CreateNote(ctx context.Context, ownerID string, request models.CreateNoteRequest) (models.Note, error) {
	return f.createFn(ctx, ownerID, request)
}

func (f *fakeNoteService) UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error) {
	return f.updateFn(ctx, ownerID, noteID, update)
}

func (f *fakeNoteService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	return f.deleteFn(ctx, ownerID, noteID)
}

// ---- fake: AppInfoService ----

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// ---- helpers ----

func newTestHandler(services *service.Services) *Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test-version"}
	}
	return NewHandler(services, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
