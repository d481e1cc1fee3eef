package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
	InfoService ClientInfoService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore.SessionRepository, serverAdapter, logger)

	return &ClientServices{
		AuthService: authSvc,
		NoteService: NewClientNoteService(authSvc, serverAdapter),
		InfoService: NewClientInfoService(serverAdapter),
	}
}
