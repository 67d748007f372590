// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side state of one login attempt. The credential
// handed to the client references it through the "jti" claim.
type Session struct {
	ID     string
	UserID int64
	Login  string
	Role   string

	Step              AuthStep
	BiometricVerified bool

	// Revoked is set on logout; every credential bound to a revoked session
	// is rejected.
	Revoked bool

	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Active reports whether the session can still authenticate requests.
func (s Session) Active(now time.Time) bool {
	return !s.Revoked && !s.Expired(now)
}
