// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrBiometricNotVerified is returned for console routes when the
	// credential was issued before the biometric factor was passed.
	ErrBiometricNotVerified = errors.New("biometric verification required")

	ErrNoClaimsInContext = errors.New("no credential claims in request context")
)
