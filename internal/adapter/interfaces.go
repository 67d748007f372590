// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the biometric console HTTP API.
//
// [ConsoleAdapter] hides the transport from the CLI. Error responses are
// mapped to the sentinels in errors.go so callers can use [errors.Is]
// (e.g. [ErrTooManyRequests] for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bio-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/console_adapter_mock.go -package=mock

// ConsoleAdapter talks to a running console. Every call after Login carries
// the bearer token held by the adapter; calls that return a fresh credential
// replace it.
type ConsoleAdapter interface {
	// SetToken stores the bearer token for subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Login checks the password and stores the issued credential.
	Login(ctx context.Context, login, password string) (models.LoginResult, error)

	// Logout revokes the current session and forgets the token.
	Logout(ctx context.Context) error

	// Me returns the state of the current session.
	Me(ctx context.Context) (models.SessionStatus, error)

	// Enroll stores a template built from capture.
	Enroll(ctx context.Context, capture models.CaptureRequest) (models.EnrollResult, error)

	// Verify compares capture with the stored template. A mismatch is not an
	// error: the result has Success == false.
	Verify(ctx context.Context, capture models.CaptureRequest) (models.VerifyResult, error)

	// Toggle enables or disables an enrolled modality.
	Toggle(ctx context.Context, req models.ToggleRequest) (models.ToggleResult, error)

	// DetectFace previews how many faces an image holds.
	DetectFace(ctx context.Context, payload string) (models.DetectFaceResult, error)

	// ConsoleSession returns the claim view; it needs a biometric-verified
	// session.
	ConsoleSession(ctx context.Context) (models.ConsoleSession, error)

	// Health reports server and database status. A degraded server is not
	// an error.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
