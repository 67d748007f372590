package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bio-console/internal/validators"
	"github.com/MKhiriev/go-bio-console/models"
)

// BiometricServiceWrapper defines middleware composition for BiometricService.
// Implementations wrap an existing BiometricService to add behavior such as
// validation.
type BiometricServiceWrapper interface {
	Wrap(BiometricService) BiometricService
}

// AuthServiceWrapper does the same for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// BiometricValidationService rejects malformed requests before they reach
// the orchestrator.
type BiometricValidationService struct {
	inner     BiometricService
	validator validators.Validator
}

func NewBiometricValidationService(validator validators.Validator) BiometricServiceWrapper {
	return &BiometricValidationService{validator: validator}
}

func (v *BiometricValidationService) Enroll(ctx context.Context, sessionID string, req models.CaptureRequest) (models.EnrollResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EnrollResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Enroll(ctx, sessionID, req)
}

func (v *BiometricValidationService) Verify(ctx context.Context, sessionID string, req models.CaptureRequest) (models.VerifyResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.VerifyResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Verify(ctx, sessionID, req)
}

func (v *BiometricValidationService) Toggle(ctx context.Context, sessionID string, req models.ToggleRequest) (models.ToggleResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ToggleResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Toggle(ctx, sessionID, req)
}

func (v *BiometricValidationService) DetectFaces(ctx context.Context, req models.DetectFaceRequest) (models.DetectFaceResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DetectFaceResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DetectFaces(ctx, req)
}

func (v *BiometricValidationService) Wrap(wrapped BiometricService) BiometricService {
	v.inner = wrapped
	return v
}

// AuthValidationService validates login requests.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Login(ctx context.Context, login, password string) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, models.LoginRequest{Login: login, Password: password}); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.AuthService.Login(ctx, login, password)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.AuthService = wrapped
	return v
}
