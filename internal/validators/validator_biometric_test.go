// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bio-console/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCapture() models.CaptureRequest {
	return models.CaptureRequest{Modality: models.Face, Payload: "aGVsbG8="}
}

func newValidator() Validator {
	return NewBiometricValidator(64)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	ctx := context.Background()
	v := newValidator()

	capture := validCapture()
	login := models.LoginRequest{Login: "alice", Password: "secret"}
	toggle := models.ToggleRequest{Modality: models.Voice, Enabled: true}
	detect := models.DetectFaceRequest{Payload: "aGVsbG8="}

	for _, obj := range []any{capture, &capture, login, &login, toggle, &toggle, detect, &detect} {
		assert.NoError(t, v.Validate(ctx, obj), "%T", obj)
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := newValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// LoginRequest
// ---------------------------------------------------------------------------

func TestValidate_LoginRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{"valid", models.LoginRequest{Login: "alice", Password: "pw"}, nil},
		{"blank login", models.LoginRequest{Login: "  ", Password: "pw"}, ErrEmptyLogin},
		{"empty password", models.LoginRequest{Login: "alice"}, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newValidator().Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// CaptureRequest
// ---------------------------------------------------------------------------

func TestValidate_CaptureRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CaptureRequest)
		wantErr error
	}{
		{"valid", func(*models.CaptureRequest) {}, nil},
		{"data url", func(r *models.CaptureRequest) { r.Payload = "data:image/png;base64,aGVsbG8=" }, nil},
		{"unknown modality", func(r *models.CaptureRequest) { r.Modality = models.Modality(0) }, ErrInvalidModality},
		{"empty payload", func(r *models.CaptureRequest) { r.Payload = "" }, ErrEmptyPayload},
		{"empty data url", func(r *models.CaptureRequest) { r.Payload = "data:image/png;base64," }, ErrEmptyPayload},
		{"too large", func(r *models.CaptureRequest) { r.Payload = strings.Repeat("A", 200) }, ErrPayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCapture()
			tt.mutate(&req)

			err := newValidator().Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CaptureRequest_FieldScoping(t *testing.T) {
	req := models.CaptureRequest{Modality: models.Face}

	// only the modality is checked, so the missing payload is ignored
	require.NoError(t, newValidator().Validate(context.Background(), req, FieldModality))

	err := newValidator().Validate(context.Background(), req, "bogus")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_NoSizeLimit(t *testing.T) {
	req := models.CaptureRequest{Modality: models.Voice, Payload: strings.Repeat("A", 4096)}
	assert.NoError(t, NewBiometricValidator(0).Validate(context.Background(), req))
}

// ---------------------------------------------------------------------------
// ToggleRequest
// ---------------------------------------------------------------------------

func TestValidate_ToggleRequest(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Validate(context.Background(), models.ToggleRequest{Modality: models.Face}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.ToggleRequest{}), ErrInvalidModality)
}
