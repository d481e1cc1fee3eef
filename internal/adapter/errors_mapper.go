package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a wrapped sentinel error
// otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// errorMessage prefers the decoded {"error": ...} body, then the raw body,
// then the status text.
func errorMessage(resp *resty.Response) string {
	if e, ok := resp.Error().(*models.ErrorResponse); ok && e != nil && e.Error != "" {
		return e.Error
	}
	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
