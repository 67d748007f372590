package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bio-console/internal/service"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path, body string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		response      string
		wantLevel     string
		wantFragments []string
	}{
		{"ok", http.StatusOK, "OK", "info", []string{`"method":"POST"`, `"path":"/api/auth/login"`, `"status":200`, `"size":2`, `"duration":`}},
		{"client error", http.StatusConflict, "", "info", []string{`"status":409`, `"size":0`}},
		{"server error", http.StatusInternalServerError, "oops", "error", []string{`"status":500`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(t, &service.Services{})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(http.MethodPost, "/api/auth/login", `{"password":"hunter2"}`, &buf))

			out := buf.String()
			assert.Contains(t, out, `"level":"`+tt.wantLevel+`"`)
			for _, fragment := range tt.wantFragments {
				assert.Contains(t, out, fragment)
			}
			assert.NotContains(t, out, "hunter2")
		})
	}
}
