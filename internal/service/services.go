package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/security"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices wires the server services over storages. The note service is
// wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := security.NewPasswordHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("create password hasher: %w", err)
	}

	tokens, err := security.NewTokenManager(cfg.TokenSignKey, cfg.TokenIssuer)
	if err != nil {
		return nil, fmt.Errorf("create token manager: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	noteService := NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, hasher, tokens, logger),
		NoteService:    noteService,
		AppInfoService: appInfo,
	}, nil
}
