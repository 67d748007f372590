// Package utils holds small helpers shared by the transports and the CLI:
// request context keys, JSON responses, the resty client, credential signing
// and parsing, and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-bio-console/models"
)

// contextKey keeps our context values apart from other packages' string
// keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the int64 user ID parsed from the credential.
	UserIDCtxKey = contextKey("userID")

	// ClaimsCtxKey holds the validated [models.Claims] of the credential.
	ClaimsCtxKey = contextKey("claims")
)

// GetUserIDFromContext returns the user ID stored by [WithClaims].
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetClaimsFromContext returns the claims stored by [WithClaims].
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// WithClaims stores claims and the user ID parsed from them in ctx.
func WithClaims(ctx context.Context, claims models.Claims, userID int64) context.Context {
	ctx = context.WithValue(ctx, ClaimsCtxKey, claims)
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
