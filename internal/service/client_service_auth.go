package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/security"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)

	resp, err := a.adapter.Register(ctx, credentials)
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return resp, nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)

	token, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	// The server already verified the token; the client only needs exp to
	// schedule the local logout.
	expiresAt, err := security.DecodeExpiryUnverified(token)
	if err != nil {
		a.adapter.SetToken("")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	session := models.Session{
		Email:     strings.ToLower(credentials.Email),
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: a.now().UTC(),
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.logger.Debug().Str("email", session.Email).Time("expires_at", expiresAt).Msg("session saved")
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (a *clientAuthService) CurrentSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if session.Expired(a.now()) {
		if err = a.Logout(ctx); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, ErrSessionExpired
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}
