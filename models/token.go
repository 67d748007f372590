// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of a session credential.
//
// The registered "sub" claim carries the user ID and "jti" carries the
// session ID. A credential is never mutated: when BiometricVerified flips to
// true a new credential is issued.
type Claims struct {
	jwt.RegisteredClaims

	Role              string `json:"role"`
	BiometricVerified bool   `json:"biometric_verified"`
}

// UserID parses the "sub" claim as a base-10 int64.
func (c Claims) UserID() (int64, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}
	return userID, nil
}

// SessionID returns the "jti" claim.
func (c Claims) SessionID() string {
	return c.ID
}

// Token wraps a signed session credential.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation
	// (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is a parsed copy of the "sub" claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
