package validators

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/MKhiriev/go-bio-console/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldLogin targets the login of a password request.
	FieldLogin = "login"

	// FieldPassword targets the plaintext password of a password request.
	FieldPassword = "password"

	// FieldModality targets the biometric_type of a capture or toggle request.
	FieldModality = "biometric_type"

	// FieldPayload targets the base64 capture payload.
	FieldPayload = "payload"
)

// BiometricValidator validates the requests of the console API:
// LoginRequest, CaptureRequest, ToggleRequest and DetectFaceRequest.
//
// Both value and pointer forms are accepted. Optional field names restrict
// validation to a subset of fields.
type BiometricValidator struct {
	maxPayloadBytes int
}

// NewBiometricValidator returns a Validator that rejects captures whose
// decoded size exceeds maxPayloadBytes. Zero disables the size check.
func NewBiometricValidator(maxPayloadBytes int) Validator {
	return &BiometricValidator{maxPayloadBytes: maxPayloadBytes}
}

func (v *BiometricValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)
	case models.CaptureRequest:
		return v.validateCaptureRequest(ctx, value, fields...)
	case *models.CaptureRequest:
		return v.validateCaptureRequest(ctx, *value, fields...)
	case models.ToggleRequest:
		return v.validateToggleRequest(ctx, value, fields...)
	case *models.ToggleRequest:
		return v.validateToggleRequest(ctx, *value, fields...)
	case models.DetectFaceRequest:
		return v.validatePayload(value.Payload)
	case *models.DetectFaceRequest:
		return v.validatePayload(value.Payload)
	default:
		return ErrUnsupportedType
	}
}

func (v *BiometricValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(request.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BiometricValidator) validateCaptureRequest(ctx context.Context, request models.CaptureRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldModality, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldModality:
			if !request.Modality.Valid() {
				return ErrInvalidModality
			}
		case FieldPayload:
			if err := v.validatePayload(request.Payload); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BiometricValidator) validateToggleRequest(ctx context.Context, request models.ToggleRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldModality}
	}

	for _, f := range fields {
		switch f {
		case FieldModality:
			if !request.Modality.Valid() {
				return ErrInvalidModality
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload checks presence and the approximate decoded size. Whether
// the payload is valid base64 is left to the extractor.
func (v *BiometricValidator) validatePayload(payload string) error {
	payload = strings.TrimSpace(payload)
	if _, data, ok := strings.Cut(payload, ","); ok && strings.HasPrefix(payload, "data:") {
		payload = data
	}
	if payload == "" {
		return ErrEmptyPayload
	}
	if v.maxPayloadBytes > 0 && base64.StdEncoding.DecodedLen(len(payload)) > v.maxPayloadBytes {
		return ErrPayloadTooLarge
	}

	return nil
}
