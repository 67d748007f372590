package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bio-console/internal/app"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/utils"
	"github.com/MKhiriev/go-bio-console/models"
)

// decodeJSON reads the request body into v. On failure the response is
// already written and false is returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	logger.FromRequest(r).Warn().Err(err).Msg("invalid JSON was passed")

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.WriteError(w, http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge, w.Header().Get(traceIDHeader))
		return false
	}

	utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, w.Header().Get(traceIDHeader))
	return false
}

// claimsFromRequest returns the claims stored by the auth middleware.
func claimsFromRequest(w http.ResponseWriter, r *http.Request) (models.Claims, bool) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(ErrNoClaimsInContext).Send()
		utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), w.Header().Get(traceIDHeader))
	}
	return claims, ok
}

func setBearer(w http.ResponseWriter, token string) {
	if token != "" {
		w.Header().Set("Authorization", "Bearer "+token)
	}
}
