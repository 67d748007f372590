package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-bio-console/models"
)

// AuthService runs the password half of the login and owns the session
// lifecycle.
type AuthService interface {
	// Login checks the password, opens a session and moves it past
	// PasswordVerified to EnrollmentRequired or BiometricPending.
	Login(ctx context.Context, login, password string) (models.LoginResult, error)

	// Logout revokes the session. Every credential bound to it stops working.
	Logout(ctx context.Context, sessionID string) error

	// Authenticate parses a credential and requires its session to be
	// active.
	Authenticate(ctx context.Context, tokenString string) (models.Claims, error)

	// Status returns the session view with the per-modality enrollment state.
	Status(ctx context.Context, sessionID string) (models.SessionStatus, error)

	// EnsureUser creates user unless its login already exists.
	EnsureUser(ctx context.Context, user models.User) (models.User, error)
}

// BiometricService is the enrollment/verification orchestrator.
type BiometricService interface {
	Enroll(ctx context.Context, sessionID string, req models.CaptureRequest) (models.EnrollResult, error)
	Verify(ctx context.Context, sessionID string, req models.CaptureRequest) (models.VerifyResult, error)
	Toggle(ctx context.Context, sessionID string, req models.ToggleRequest) (models.ToggleResult, error)
	DetectFaces(ctx context.Context, req models.DetectFaceRequest) (models.DetectFaceResult, error)
}

// CredentialIssuer signs and parses session credentials.
type CredentialIssuer interface {
	Issue(session models.Session) (models.Token, error)
	Parse(tokenString string) (models.Token, error)
}

// AppInfoService reports the running version and the health of the
// dependencies.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}
