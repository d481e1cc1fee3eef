package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// errorResponse is what a client sees for a given error.
type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins, so specific
// validation errors come before their parent ErrValidation.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrInvalidEmail, errorResponse{http.StatusBadRequest, app.MsgInvalidEmail}},
	{service.ErrEmptyPassword, errorResponse{http.StatusBadRequest, app.MsgEmptyPassword}},
	{service.ErrPasswordTooLong, errorResponse{http.StatusBadRequest, app.MsgPasswordTooLong}},
	{service.ErrEmptyTitle, errorResponse{http.StatusBadRequest, app.MsgEmptyTitle}},
	{service.ErrEmptyContent, errorResponse{http.StatusBadRequest, app.MsgEmptyContent}},
	{service.ErrNothingToUpdate, errorResponse{http.StatusBadRequest, app.MsgNothingToUpdate}},
	{service.ErrValidation, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrDuplicateAccount, errorResponse{http.StatusBadRequest, app.MsgAccountAlreadyExists}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, app.MsgInvalidCredentials}},
	{service.ErrUnauthenticated, errorResponse{http.StatusUnauthorized, app.MsgUnauthenticated}},
	{service.ErrNoteNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},
}

var internalError = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes its public form. Internal details never
// reach the body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteError(w, resp.message, resp.status)
}
