package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"
	notesPath    = "/notes"
	notePath     = "/notes/{id}"
	versionPath  = "/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter]
// for the API at cfg.HTTPAddress.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewJSONHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetError(&models.ErrorResponse{})
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// Register POSTs credentials to /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.request(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post(registerPath)
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return result, nil
}

// Login POSTs credentials to /auth/login and keeps the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post(loginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("login response without token")
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.authedRequest(ctx).
		SetResult(&notes).
		Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetResult(&note).
		Get(notePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, request models.CreateNoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetBody(request).
		SetResult(&note).
		Post(notesPath)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetBody(update).
		SetResult(&note).
		Put(notePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		Delete(notePath)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
