package http

import (
	"net/http"

	"github.com/MKhiriev/go-bio-console/internal/utils"
	"github.com/MKhiriev/go-bio-console/models"
)

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CaptureRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	result, err := h.services.BiometricService.Enroll(r.Context(), claims.SessionID(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setBearer(w, result.Token)
	utils.WriteJSON(w, result, http.StatusOK)
}

// verify answers 200 for both outcomes of a comparison; a mismatch has
// success=false and no token.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CaptureRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	result, err := h.services.BiometricService.Verify(r.Context(), claims.SessionID(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setBearer(w, result.Token)
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var request models.ToggleRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	result, err := h.services.BiometricService.Toggle(r.Context(), claims.SessionID(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) detectFace(w http.ResponseWriter, r *http.Request) {
	var request models.DetectFaceRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	result, err := h.services.BiometricService.DetectFaces(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
