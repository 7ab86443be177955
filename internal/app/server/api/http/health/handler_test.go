package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name       string
		ready      func(ctx context.Context) error
		wantStatus int
	}{
		{
			name:       "no probe",
			wantStatus: http.StatusOK,
		},
		{
			name:       "index ready",
			ready:      func(context.Context) error { return nil },
			wantStatus: http.StatusOK,
		},
		{
			name:       "index unavailable",
			ready:      func(context.Context) error { return errors.New("store closed") },
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(tt.ready, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			if tt.wantStatus != http.StatusOK {
				var se huma.StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.wantStatus, se.GetStatus())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "OK", output.Body.Status)
			assert.Equal(t, "ready", output.Body.Index)
		})
	}
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(nil, slog.Default(), huma.Middlewares{})

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
