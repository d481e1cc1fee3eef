package adapter

import "errors"

// Transport errors, one per HTTP status class the API returns. The server's
// {"error": ...} message is appended when present.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty adapter address")
)
