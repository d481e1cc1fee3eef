package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("abc"))
	rw.Write([]byte("de"))

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, rw.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 5, rw.size)
	assert.Same(t, rec, rw.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, rw.status)
	assert.True(t, rw.wroteHeader)
}
