package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bio-console/internal/biometric"
	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/crypto"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/matcher"
	"github.com/MKhiriev/go-bio-console/internal/store"
	"github.com/MKhiriev/go-bio-console/internal/workers"
	"github.com/MKhiriev/go-bio-console/models"
)

const msgNoMatch = "biometric sample did not match"

// biometricService drives enrollment and verification for a session.
//
// Extraction runs on the bounded pool. Nothing is persisted and no
// credential is issued before the last step of an operation, so a cancelled
// call leaves no trace.
type biometricService struct {
	templates store.TemplateRepository
	sessions  store.SessionStorage

	extractor biometric.Extractor
	cipher    crypto.TemplateCipher
	matcher   *matcher.Matcher
	issuer    CredentialIssuer

	pool    *workers.Pool
	limiter *attemptLimiter

	enrollmentCompletesLogin bool

	now    func() time.Time
	logger *logger.Logger
}

// BiometricDeps groups the engine components the orchestrator drives.
type BiometricDeps struct {
	Extractor biometric.Extractor
	Cipher    crypto.TemplateCipher
	Matcher   *matcher.Matcher
	Issuer    CredentialIssuer
	Pool      *workers.Pool
}

func NewBiometricService(storages *store.Storages, deps BiometricDeps, cfg config.Biometric, logger *logger.Logger) BiometricService {
	return &biometricService{
		templates:                storages.TemplateRepository,
		sessions:                 storages.SessionStorage,
		extractor:                deps.Extractor,
		cipher:                   deps.Cipher,
		matcher:                  deps.Matcher,
		issuer:                   deps.Issuer,
		pool:                     deps.Pool,
		limiter:                  newAttemptLimiter(cfg.VerifyRatePerMinute, cfg.VerifyBurst),
		enrollmentCompletesLogin: cfg.EnrollmentCompletesLogin,
		now:                      time.Now,
		logger:                   logger,
	}
}

// Enroll extracts a template from the capture, encrypts it and replaces the
// user's record for the modality.
//
// Enrollment is allowed while the session waits for its first enrollment and
// after the login is complete. In EnrollmentRequired a successful enrollment
// moves the session to BiometricPending, or to Complete with a refreshed
// credential when enrollment completes the login.
func (s *biometricService) Enroll(ctx context.Context, sessionID string, req models.CaptureRequest) (models.EnrollResult, error) {
	log := logger.FromContext(ctx)

	session, err := s.session(ctx, sessionID)
	if err != nil {
		return models.EnrollResult{}, err
	}
	if session.Step != models.EnrollmentRequired && session.Step != models.Complete {
		return models.EnrollResult{}, fmt.Errorf("%w: enroll at %s", ErrInvalidStep, session.Step)
	}

	vector, err := s.extract(ctx, req)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", session.UserID).Stringer("modality", req.Modality).Msg("enrollment capture rejected")
		return models.EnrollResult{}, err
	}

	blob, err := s.cipher.Encrypt(models.Template{OwnerID: session.UserID, Modality: req.Modality, Vector: vector})
	if err != nil {
		log.Err(err).Int64("user_id", session.UserID).Str("func", "*biometricService.Enroll").Msg("error encrypting template")
		return models.EnrollResult{}, fmt.Errorf("error encrypting template: %w", err)
	}

	next := session.Step
	if session.Step == models.EnrollmentRequired {
		next = models.BiometricPending
		if s.enrollmentCompletesLogin {
			next = models.Complete
		}
	}

	// signed before the record is written
	var token models.Token
	if next == models.Complete && session.Step != models.Complete {
		projected := session
		projected.Step, projected.BiometricVerified = next, true
		if token, err = s.issuer.Issue(projected); err != nil {
			return models.EnrollResult{}, err
		}
	}

	if _, err = s.templates.Upsert(ctx, models.BiometricRecord{
		OwnerID:       session.UserID,
		Modality:      req.Modality,
		EncryptedBlob: blob,
		Enrolled:      true,
	}); err != nil {
		log.Err(err).Int64("user_id", session.UserID).Str("func", "*biometricService.Enroll").Msg("error saving biometric record")
		return models.EnrollResult{}, fmt.Errorf("error saving biometric record: %w", err)
	}

	updated, err := s.advance(ctx, sessionID, next, next == models.Complete)
	if err != nil {
		return models.EnrollResult{}, err
	}

	log.Info().
		Int64("user_id", session.UserID).
		Stringer("modality", req.Modality).
		Stringer("step", updated.Step).
		Msg("biometric enrolled")

	return models.EnrollResult{
		Success:  true,
		Modality: req.Modality,
		Step:     updated.Step,
		Token:    token.SignedString,
	}, nil
}

// Verify compares a fresh capture with the enrolled template.
//
// A mismatch is not an error: Success is false, the confidence is reported
// and the session keeps its step. A match completes the login and returns a
// credential with biometric_verified=true.
func (s *biometricService) Verify(ctx context.Context, sessionID string, req models.CaptureRequest) (models.VerifyResult, error) {
	log := logger.FromContext(ctx)

	session, err := s.session(ctx, sessionID)
	if err != nil {
		return models.VerifyResult{}, err
	}
	if session.Step < models.EnrollmentRequired {
		return models.VerifyResult{}, fmt.Errorf("%w: verify at %s", ErrInvalidStep, session.Step)
	}
	if !s.limiter.Allow(session.UserID) {
		log.Warn().Int64("user_id", session.UserID).Msg("verification rate limit exceeded")
		return models.VerifyResult{}, ErrTooManyAttempts
	}

	record, err := s.templates.Get(ctx, session.UserID, req.Modality)
	if errors.Is(err, store.ErrTemplateNotFound) || (err == nil && !record.Enrolled) {
		return models.VerifyResult{}, fmt.Errorf("%w: %s", ErrNotEnrolled, req.Modality)
	}
	if err != nil {
		return models.VerifyResult{}, fmt.Errorf("error loading biometric record: %w", err)
	}

	enrolled, err := s.decrypt(ctx, record)
	if err != nil {
		return models.VerifyResult{}, err
	}

	vector, err := s.extract(ctx, req)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", session.UserID).Stringer("modality", req.Modality).Msg("verification capture rejected")
		return models.VerifyResult{}, err
	}

	match, err := s.matcher.Compare(enrolled.Vector, vector, req.Modality)
	if err != nil {
		log.Err(err).Int64("user_id", session.UserID).Str("func", "*biometricService.Verify").Msg("error comparing templates")
		return models.VerifyResult{}, fmt.Errorf("error comparing templates: %w", err)
	}

	result := models.VerifyResult{
		Success:    match.Matched,
		Confidence: match.Confidence,
		Similarity: match.Similarity,
		Threshold:  match.Threshold,
		Step:       session.Step,
	}
	log.Info().
		Int64("user_id", session.UserID).
		Stringer("modality", req.Modality).
		Float64("similarity", match.Similarity).
		Bool("matched", match.Matched).
		Msg("biometric verification")

	if !match.Matched {
		result.Error = msgNoMatch
		return result, nil
	}

	projected := session
	projected.Step, projected.BiometricVerified = models.Complete, true
	token, err := s.issuer.Issue(projected)
	if err != nil {
		return models.VerifyResult{}, err
	}

	updated, err := s.advance(ctx, sessionID, models.Complete, true)
	if err != nil {
		return models.VerifyResult{}, err
	}

	result.Step = updated.Step
	result.Token = token.SignedString
	return result, nil
}

// Toggle switches a stored record on or off without re-deriving it.
//
// Enabling re-checks that the record still decrypts. When a session waiting
// for enrollment gets an enabled modality it moves to BiometricPending.
// Toggling is refused while a biometric check is pending.
func (s *biometricService) Toggle(ctx context.Context, sessionID string, req models.ToggleRequest) (models.ToggleResult, error) {
	log := logger.FromContext(ctx)

	session, err := s.session(ctx, sessionID)
	if err != nil {
		return models.ToggleResult{}, err
	}
	if session.Step != models.EnrollmentRequired && session.Step != models.Complete {
		return models.ToggleResult{}, fmt.Errorf("%w: toggle at %s", ErrInvalidStep, session.Step)
	}

	record, err := s.templates.Get(ctx, session.UserID, req.Modality)
	if errors.Is(err, store.ErrTemplateNotFound) {
		return models.ToggleResult{}, fmt.Errorf("%w: %s", ErrRecordNotFound, req.Modality)
	}
	if err != nil {
		return models.ToggleResult{}, fmt.Errorf("error loading biometric record: %w", err)
	}

	if req.Enabled {
		if _, err = s.decrypt(ctx, record); err != nil {
			return models.ToggleResult{}, err
		}
	}

	err = s.templates.SetEnrolled(ctx, session.UserID, req.Modality, req.Enabled)
	if errors.Is(err, store.ErrTemplateNotFound) {
		return models.ToggleResult{}, fmt.Errorf("%w: %s", ErrRecordNotFound, req.Modality)
	}
	if err != nil {
		log.Err(err).Int64("user_id", session.UserID).Str("func", "*biometricService.Toggle").Msg("error updating biometric record")
		return models.ToggleResult{}, fmt.Errorf("error updating biometric record: %w", err)
	}

	step := session.Step
	if req.Enabled && session.Step == models.EnrollmentRequired {
		updated, err := s.advance(ctx, sessionID, models.BiometricPending, false)
		if err != nil {
			return models.ToggleResult{}, err
		}
		step = updated.Step
	}

	log.Info().
		Int64("user_id", session.UserID).
		Stringer("modality", req.Modality).
		Bool("enabled", req.Enabled).
		Msg("biometric toggled")

	return models.ToggleResult{Success: true, Modality: req.Modality, Enabled: req.Enabled, Step: step}, nil
}

// DetectFaces counts the faces in an image without storing anything.
func (s *biometricService) DetectFaces(ctx context.Context, req models.DetectFaceRequest) (models.DetectFaceResult, error) {
	raw, err := biometric.DecodePayload(req.Payload)
	if err != nil {
		return models.DetectFaceResult{}, err
	}

	var count int
	err = s.pool.Do(ctx, func(ctx context.Context) error {
		var err error
		count, err = s.extractor.DetectFaces(ctx, raw)
		return err
	})
	if err != nil {
		return models.DetectFaceResult{}, err
	}

	result := models.DetectFaceResult{FaceDetected: count > 0, FaceCount: count}
	switch {
	case count == 0:
		result.Message = "no face detected"
	case count == 1:
		result.Message = "face detected"
	default:
		result.Message = fmt.Sprintf("%d faces detected, exactly one is required", count)
	}

	return result, nil
}

func (s *biometricService) session(ctx context.Context, sessionID string) (models.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionRevoked
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}
	if !session.Active(s.now()) {
		return models.Session{}, ErrSessionRevoked
	}

	return session, nil
}

// advance moves the session to next. Staying on the same step is allowed.
// The session is re-read under the storage lock so a concurrent logout wins.
func (s *biometricService) advance(ctx context.Context, sessionID string, next models.AuthStep, verified bool) (models.Session, error) {
	updated, err := s.sessions.Modify(ctx, sessionID, func(session *models.Session) error {
		if !session.Active(s.now()) {
			return ErrSessionRevoked
		}
		if session.Step != next {
			step, err := session.Step.Next(next)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidStep, err)
			}
			session.Step = step
		}
		if verified {
			session.BiometricVerified = true
		}
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionRevoked
	}
	if err != nil {
		return models.Session{}, err
	}

	return updated, nil
}

func (s *biometricService) extract(ctx context.Context, req models.CaptureRequest) ([]float64, error) {
	raw, err := biometric.DecodePayload(req.Payload)
	if err != nil {
		return nil, err
	}

	var vector []float64
	err = s.pool.Do(ctx, func(ctx context.Context) error {
		var err error
		vector, err = s.extractor.Extract(ctx, req.Modality, raw)
		return err
	})
	if err != nil {
		return nil, err
	}

	return vector, nil
}

// decrypt opens a stored record. A failure is an integrity fault and is
// reported as a security event.
func (s *biometricService) decrypt(ctx context.Context, record models.BiometricRecord) (models.Template, error) {
	template, err := s.cipher.Decrypt(record.OwnerID, record.Modality, record.EncryptedBlob)
	if err != nil {
		logger.FromContext(ctx).Error().
			Err(err).
			Bool("security_event", true).
			Int64("user_id", record.OwnerID).
			Stringer("modality", record.Modality).
			Int64("record_id", record.ID).
			Msg("stored biometric template failed integrity check")
		if !errors.Is(err, crypto.ErrTamperedOrCorrupt) {
			err = fmt.Errorf("%w: %w", crypto.ErrTamperedOrCorrupt, err)
		}
		return models.Template{}, err
	}

	return template, nil
}
