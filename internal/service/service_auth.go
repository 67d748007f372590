package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/store"
	"github.com/MKhiriev/go-bio-console/internal/utils"
	"github.com/MKhiriev/go-bio-console/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes, opens sessions and decides the first
// biometric step from the user's enrolled modalities.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// templateRepository tells which modalities the user has enrolled.
	templateRepository store.TemplateRepository

	sessions store.SessionStorage
	issuer   CredentialIssuer

	// sessionDuration bounds the life of a session and of every credential
	// issued for it.
	sessionDuration time.Duration

	ids *utils.UUIDGenerator
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction and sessions live in the session storage.
func NewAuthService(storages *store.Storages, issuer CredentialIssuer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     storages.UserRepository,
		templateRepository: storages.TemplateRepository,
		sessions:           storages.SessionStorage,
		issuer:             issuer,
		sessionDuration:    cfg.TokenDuration,
		ids:                utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

// Login authenticates a user by password.
//
// An unknown login and a wrong password both yield ErrWrongPassword.
// The new session passes PasswordVerified and is immediately re-evaluated:
// no enrolled modality leads to EnrollmentRequired, otherwise
// BiometricPending. The returned credential has biometric_verified=false.
func (a *authService) Login(ctx context.Context, login, password string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("login", login).Str("func", "*authService.Login").Msg("login attempt for unknown user")
		return models.LoginResult{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", login).Str("func", "*authService.Login").Msg("user search by login failed")
		return models.LoginResult{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("user_id", user.UserID).Str("func", "*authService.Login").Msg("wrong password")
		return models.LoginResult{}, ErrWrongPassword
	}
	if !user.IsActive {
		log.Warn().Int64("user_id", user.UserID).Str("func", "*authService.Login").Msg("inactive user tried to log in")
		return models.LoginResult{}, ErrUserInactive
	}

	records, err := a.templateRepository.ListByOwner(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Str("func", "*authService.Login").Msg("error loading enrolled modalities")
		return models.LoginResult{}, fmt.Errorf("error loading enrolled modalities: %w", err)
	}
	enrolled := enrolledModalities(records)

	now := a.now()
	session := models.Session{
		ID:        a.ids.Generate(),
		UserID:    user.UserID,
		Login:     user.Login,
		Role:      user.Role,
		Step:      models.PasswordPending,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}
	if session.Step, err = session.Step.Next(models.PasswordVerified); err != nil {
		return models.LoginResult{}, err
	}
	if session.Step, err = session.Step.Next(stepAfterPassword(enrolled)); err != nil {
		return models.LoginResult{}, err
	}

	token, err := a.issuer.Issue(session)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Str("func", "*authService.Login").Msg("error issuing credential")
		return models.LoginResult{}, err
	}

	if err = a.sessions.Create(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Str("func", "*authService.Login").Msg("error saving session")
		return models.LoginResult{}, fmt.Errorf("error saving session: %w", err)
	}

	log.Info().
		Int64("user_id", user.UserID).
		Str("session_id", session.ID).
		Stringer("step", session.Step).
		Msg("password verified")

	return models.LoginResult{
		Token:      token.SignedString,
		Step:       session.Step,
		UserID:     user.UserID,
		Login:      user.Login,
		Role:       user.Role,
		Modalities: enrolled,
	}, nil
}

// Logout revokes the session and resets it to PasswordPending.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	_, err := a.sessions.Modify(ctx, sessionID, func(s *models.Session) error {
		s.Revoked = true
		s.BiometricVerified = false
		s.Step = models.PasswordPending
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrSessionRevoked
	}
	if err != nil {
		return fmt.Errorf("error revoking session: %w", err)
	}

	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("session revoked")
	return nil
}

// Authenticate parses tokenString and checks that its session is still
// active and belongs to the same user.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := a.issuer.Parse(tokenString)
	if err != nil {
		return models.Claims{}, err
	}

	session, err := a.activeSession(ctx, token.Claims.SessionID())
	if err != nil {
		return models.Claims{}, err
	}
	if session.UserID != token.UserID {
		logger.FromContext(ctx).Warn().
			Int64("token_user_id", token.UserID).
			Int64("session_user_id", session.UserID).
			Str("func", "*authService.Authenticate").
			Msg("credential does not belong to its session")
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims, nil
}

func (a *authService) Status(ctx context.Context, sessionID string) (models.SessionStatus, error) {
	session, err := a.activeSession(ctx, sessionID)
	if err != nil {
		return models.SessionStatus{}, err
	}

	records, err := a.templateRepository.ListByOwner(ctx, session.UserID)
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("error loading biometric records: %w", err)
	}

	stored := make(map[models.Modality]models.BiometricRecord, len(records))
	for _, record := range records {
		stored[record.Modality] = record
	}

	statuses := make([]models.ModalityStatus, 0, len(models.Modalities))
	for _, modality := range models.Modalities {
		record, ok := stored[modality]
		statuses = append(statuses, models.ModalityStatus{
			Modality: modality,
			Stored:   ok,
			Enrolled: ok && record.Enrolled,
		})
	}

	return models.SessionStatus{
		UserID:            session.UserID,
		Login:             session.Login,
		Role:              session.Role,
		Step:              session.Step,
		BiometricVerified: session.BiometricVerified,
		Modalities:        statuses,
	}, nil
}

// EnsureUser hashes user.Password with bcrypt and creates the account. An
// existing account with the same login is returned unchanged.
func (a *authService) EnsureUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	existing, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.IsActive = true

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		// created concurrently
		return a.userRepository.FindUserByLogin(ctx, user.Login)
	}
	if err != nil {
		log.Err(err).Str("login", user.Login).Str("func", "*authService.EnsureUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("login", created.Login).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (a *authService) activeSession(ctx context.Context, sessionID string) (models.Session, error) {
	session, err := a.sessions.Get(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionRevoked
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}
	if !session.Active(a.now()) {
		return models.Session{}, ErrSessionRevoked
	}

	return session, nil
}

// enrolledModalities returns the modalities whose records are switched on.
func enrolledModalities(records []models.BiometricRecord) []models.Modality {
	enrolled := make([]models.Modality, 0, len(records))
	for _, record := range records {
		if record.Enrolled {
			enrolled = append(enrolled, record.Modality)
		}
	}
	return enrolled
}

func stepAfterPassword(enrolled []models.Modality) models.AuthStep {
	if len(enrolled) == 0 {
		return models.EnrollmentRequired
	}
	return models.BiometricPending
}
