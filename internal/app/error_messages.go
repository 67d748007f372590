// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the caller-facing messages shared by the HTTP and
// gRPC transports.
//
// Server-side failures never reach the caller verbatim; they are replaced by
// one of these strings so both transports word them the same way.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgBodyTooLarge is returned when the request body exceeds the server
	// limit.
	MsgBodyTooLarge = "request body is too large"

	// MsgInvalidLoginPassword is returned for an unknown login and for a wrong
	// password alike.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgIntegrityFault is returned when a stored template fails
	// authenticated decryption. It must stay distinguishable from a failed
	// match.
	MsgIntegrityFault = "stored biometric template failed integrity check"

	// MsgInternalServerError replaces every other server-side failure.
	MsgInternalServerError = "internal server error"

	// MsgBiometricRequired is returned by console routes when the credential
	// has not passed biometric verification.
	MsgBiometricRequired = "biometric verification required"

	// MsgRouteNotFound is returned for paths no route matches.
	MsgRouteNotFound = "route not found"
)
