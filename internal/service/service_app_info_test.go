package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr error
	}{
		{name: "release version", version: "1.0.0", want: "1.0.0"},
		{name: "pre-release with build metadata", version: "v1.2.3-beta+build.42", want: "v1.2.3-beta+build.42"},
		{name: "surrounding spaces trimmed", version: " 2.0.1\n", want: "2.0.1"},
		{name: "empty version", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank version", version: "   ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
