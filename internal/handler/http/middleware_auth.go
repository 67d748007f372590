// Package http implements the HTTP transport layer of the console.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and compression are
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"net/http"

	"github.com/MKhiriev/go-bio-console/internal/app"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/utils"
)

// auth is an HTTP middleware that enforces credential-based authentication.
//
// It extracts the bearer token from the "Authorization" header and validates
// it via [service.AuthService.Authenticate], which also requires the bound
// session to be alive. On success the claims and the user ID are stored in
// the request context with [utils.WithClaims].
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent
// or malformed, the token is invalid or expired, or the session was revoked.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error(), w.Header().Get(traceIDHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Err(err).Msg("credential subject is not a user id")
			utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), w.Header().Get(traceIDHeader))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims, userID)))
	})
}

// requireBiometric lets through only credentials issued after a successful
// biometric check. It must run after auth.
func (h *Handler) requireBiometric(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaimsFromContext(r.Context())
		if !ok {
			logger.FromRequest(r).Error().Err(ErrNoClaimsInContext).Send()
			utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), w.Header().Get(traceIDHeader))
			return
		}
		if !claims.BiometricVerified {
			logger.FromRequest(r).Warn().Err(ErrBiometricNotVerified).Str("session_id", claims.SessionID()).Send()
			utils.WriteError(w, http.StatusForbidden, app.MsgBiometricRequired, w.Header().Get(traceIDHeader))
			return
		}

		next.ServeHTTP(w, r)
	})
}
