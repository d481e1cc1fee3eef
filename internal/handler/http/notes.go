package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

// ownerFromRequest returns the account bound by the auth middleware.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := utils.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return "", false
	}
	return ownerID, true
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateNoteRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), ownerID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var update models.NoteUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), ownerID, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoteDeleted}, http.StatusOK)
}
