package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bio-console/internal/app"
	"github.com/MKhiriev/go-bio-console/internal/biometric"
	"github.com/MKhiriev/go-bio-console/internal/crypto"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/service"
	"github.com/MKhiriev/go-bio-console/internal/utils"
)

// every target must match a disjoint set of errors, the map has no order
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrUserInactive:            http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrSessionRevoked:          http.StatusUnauthorized,
	service.ErrInvalidStep:             http.StatusConflict,
	service.ErrNotEnrolled:             http.StatusNotFound,
	service.ErrRecordNotFound:          http.StatusNotFound,
	service.ErrTooManyAttempts:         http.StatusTooManyRequests,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	biometric.ErrExtraction:      http.StatusUnprocessableEntity,
	crypto.ErrTamperedOrCorrupt:  http.StatusInternalServerError,
	utils.ErrInvalidAuthorization: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to the caller. Client errors carry
// their reason; server errors are generic except for integrity faults, which
// must stay distinguishable from a failed match.
func messageFromError(err error, status int) string {
	switch {
	case errors.Is(err, crypto.ErrTamperedOrCorrupt):
		return app.MsgIntegrityFault
	case errors.Is(err, service.ErrWrongPassword):
		return app.MsgInvalidLoginPassword
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	default:
		return err.Error()
	}
}

// writeServiceError logs err and answers with the mapped status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, messageFromError(err, status), w.Header().Get(traceIDHeader))
}
