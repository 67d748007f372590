package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bio-console/internal/app"
	"github.com/MKhiriev/go-bio-console/internal/biometric"
	"github.com/MKhiriev/go-bio-console/internal/crypto"
	"github.com/MKhiriev/go-bio-console/internal/service"
	"github.com/MKhiriev/go-bio-console/internal/utils"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: empty login", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{service.ErrUserInactive, http.StatusForbidden},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{service.ErrSessionRevoked, http.StatusUnauthorized},
		{utils.ErrInvalidAuthorization, http.StatusUnauthorized},
		{service.ErrInvalidStep, http.StatusConflict},
		{service.ErrNotEnrolled, http.StatusNotFound},
		{service.ErrRecordNotFound, http.StatusNotFound},
		{service.ErrTooManyAttempts, http.StatusTooManyRequests},
		{biometric.ErrDecode, http.StatusUnprocessableEntity},
		{biometric.ErrNoFaceDetected, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", biometric.ErrCaptureTooShort), http.StatusUnprocessableEntity},
		{crypto.ErrTamperedOrCorrupt, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	tampered := fmt.Errorf("%w: cipher: message authentication failed", crypto.ErrTamperedOrCorrupt)
	assert.Equal(t, app.MsgIntegrityFault, messageFromError(tampered, http.StatusInternalServerError))

	assert.Equal(t, app.MsgInvalidLoginPassword, messageFromError(service.ErrWrongPassword, http.StatusUnauthorized))

	assert.Equal(t, app.MsgInternalServerError,
		messageFromError(errors.New("dial tcp 10.0.0.1:5432"), http.StatusInternalServerError))

	assert.Equal(t, biometric.ErrNoFaceDetected.Error(),
		messageFromError(biometric.ErrNoFaceDetected, http.StatusUnprocessableEntity))
}
