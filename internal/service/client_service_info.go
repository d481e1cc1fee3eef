package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
)

type clientInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientInfoService(serverAdapter adapter.ServerAdapter) ClientInfoService {
	return &clientInfoService{adapter: serverAdapter}
}

// ServerVersion needs no session.
func (c *clientInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return strings.TrimSpace(version), nil
}
