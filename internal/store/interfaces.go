package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bio-console/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TemplateRepository persists encrypted biometric records. There is at most
// one record per (owner, modality).
type TemplateRepository interface {
	// Upsert stores record, replacing the blob of an existing one. The
	// returned record carries the database ID and timestamps; CreatedAt of a
	// replaced record is preserved.
	Upsert(ctx context.Context, record models.BiometricRecord) (models.BiometricRecord, error)

	// Get returns [ErrTemplateNotFound] when nothing is stored.
	Get(ctx context.Context, ownerID int64, modality models.Modality) (models.BiometricRecord, error)

	// SetEnrolled flips the enrolled switch. Returns [ErrTemplateNotFound]
	// when nothing is stored.
	SetEnrolled(ctx context.Context, ownerID int64, modality models.Modality, enrolled bool) error

	// ListByOwner returns every record of the owner ordered by modality.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.BiometricRecord, error)
}

// SessionStorage keeps the server-side login sessions.
type SessionStorage interface {
	Create(ctx context.Context, session models.Session) error
	Get(ctx context.Context, sessionID string) (models.Session, error)

	// Modify applies fn to the stored session atomically. The session is
	// left unchanged when fn returns an error.
	Modify(ctx context.Context, sessionID string, fn func(*models.Session) error) (models.Session, error)

	Delete(ctx context.Context, sessionID string) error

	// PurgeExpired removes sessions that expired at now and returns how many
	// were removed.
	PurgeExpired(ctx context.Context, now time.Time) int
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
