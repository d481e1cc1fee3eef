package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Register(ctx, credentials.Email, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", account.ID).Msg("account registered")
	utils.WriteJSON(w, models.RegisterResponse{ID: account.ID, Message: app.MsgAccountCreated}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("account_id", account.ID).Msg("account logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
