package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bufferedHandler returns a handler whose logs land in buf.
func bufferedHandler(services *service.Services, buf *bytes.Buffer) *Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{}
	}
	// Only the request path writes to buf; constructor logs would skew counts.
	h := NewHandler(services, logger.Nop())
	h.logger = &logger.Logger{Logger: zerolog.New(buf)}
	return h
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestWithLogging_AccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&service.Services{}, &buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/teapot", nil))

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "/teapot", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, len("short and stout"), entry["size"])
	assert.Equal(t, rec.Header().Get(traceIDHeader), entry["trace_id"])
}

func TestWithLogging_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&service.Services{}, &buf)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0]["status"])
}

func TestWithLogging_NeverLogsBodies(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&service.Services{AuthService: &fakeAuthService{}}, &buf)
	router := h.Init()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"hunter2-secret`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, buf.String(), "hunter2-secret")
}
