package http

import (
	"net/http"

	"github.com/MKhiriev/go-bio-console/internal/utils"
	"github.com/MKhiriev/go-bio-console/models"
)

// consoleSession shows the claims of a fully authenticated session.
func (h *Handler) consoleSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	view := models.ConsoleSession{
		UserID:            userID,
		SessionID:         claims.SessionID(),
		Role:              claims.Role,
		BiometricVerified: claims.BiometricVerified,
	}
	if claims.IssuedAt != nil {
		view.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		view.ExpiresAt = claims.ExpiresAt.Time
	}

	utils.WriteJSON(w, view, http.StatusOK)
}
