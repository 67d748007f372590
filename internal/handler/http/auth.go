package http

import (
	"net/http"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/utils"
	"github.com/MKhiriev/go-bio-console/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), request.Login, request.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", result.UserID).Stringer("step", result.Step).Msg("user logged in")

	setBearer(w, result.Token)
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), claims.SessionID()); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	status, err := h.services.AuthService.Status(r.Context(), claims.SessionID())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
