package service

import (
	"fmt"

	"github.com/MKhiriev/go-bio-console/internal/biometric"
	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/crypto"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/matcher"
	"github.com/MKhiriev/go-bio-console/internal/store"
	"github.com/MKhiriev/go-bio-console/internal/validators"
	"github.com/MKhiriev/go-bio-console/internal/workers"
)

type Services struct {
	AuthService      AuthService
	BiometricService BiometricService
	AppInfoService   AppInfoService
}

// NewServices wires the engine: key material is derived once here and the
// face cascade is loaded from disk. Both failures are fatal for the server.
func NewServices(storages *store.Storages, db Pinger, pool *workers.Pool, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	key, err := crypto.DeriveKeyMaterial(cfg.Biometric.EncryptionKey, cfg.Biometric.EncryptionSalt)
	if err != nil {
		return nil, fmt.Errorf("error deriving template key: %w", err)
	}
	cipher, err := crypto.NewTemplateCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating template cipher: %w", err)
	}

	detector, err := biometric.LoadFaceDetector(cfg.Biometric.FaceCascadePath)
	if err != nil {
		return nil, fmt.Errorf("error loading face detector: %w", err)
	}

	m, err := matcher.New(cfg.Biometric.FaceTolerance, cfg.Biometric.VoiceThreshold)
	if err != nil {
		return nil, fmt.Errorf("error creating matcher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, db, logger)
	if err != nil {
		return nil, err
	}

	issuer := NewCredentialIssuer(cfg.App)
	validator := validators.NewBiometricValidator(cfg.Biometric.MaxPayloadBytes)

	biometricService := NewBiometricService(storages, BiometricDeps{
		Extractor: biometric.NewExtractor(detector),
		Cipher:    cipher,
		Matcher:   m,
		Issuer:    issuer,
		Pool:      pool,
	}, cfg.Biometric, logger)

	return &Services{
		AuthService:      NewAuthValidationService(validator).Wrap(NewAuthService(storages, issuer, cfg.App, logger)),
		BiometricService: NewBiometricValidationService(validator).Wrap(biometricService),
		AppInfoService:   appInfo,
	}, nil
}
