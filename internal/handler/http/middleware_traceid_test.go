package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/service"
)

func TestWithTraceID(t *testing.T) {
	known := uuid.NewString()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when absent", "", false},
		{"reused when valid", known, true},
		{"replaced when not a uuid", "abc\nforged-log-line", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{})

			var sawLogger bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sawLogger = logger.FromRequest(r) != nil
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
			assert.True(t, sawLogger)
		})
	}
}

func TestErrorBodyCarriesTraceID(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(t, h, http.MethodGet, "/api/auth/me", "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), rec.Header().Get(traceIDHeader))
}
