package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Delete("/items/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "registered", method: http.MethodGet, path: "/items", want: http.StatusOK},
		{name: "registered with param", method: http.MethodDelete, path: "/items/1", want: http.StatusNoContent},
		{name: "wrong method", method: http.MethodPost, path: "/items", want: http.StatusNotFound},
		{name: "wrong method with param", method: http.MethodGet, path: "/items/1", want: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nothing", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
