package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/utils"
	"github.com/MKhiriev/go-bio-console/models"
)

func (h *Handler) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	result, err := h.services.AuthService.Login(ctx, req.Login, req.Password)
	if err != nil {
		return nil, toStatus(logger.FromContext(ctx), err)
	}

	return &result, nil
}

func (h *Handler) Enroll(ctx context.Context, req *models.CaptureRequest) (*models.EnrollResult, error) {
	result, err := h.services.BiometricService.Enroll(ctx, sessionID(ctx), *req)
	if err != nil {
		return nil, toStatus(logger.FromContext(ctx), err)
	}

	sendToken(ctx, result.Token)
	return &result, nil
}

func (h *Handler) Verify(ctx context.Context, req *models.CaptureRequest) (*models.VerifyResult, error) {
	result, err := h.services.BiometricService.Verify(ctx, sessionID(ctx), *req)
	if err != nil {
		return nil, toStatus(logger.FromContext(ctx), err)
	}

	sendToken(ctx, result.Token)
	return &result, nil
}

func (h *Handler) Toggle(ctx context.Context, req *models.ToggleRequest) (*models.ToggleResult, error) {
	result, err := h.services.BiometricService.Toggle(ctx, sessionID(ctx), *req)
	if err != nil {
		return nil, toStatus(logger.FromContext(ctx), err)
	}

	return &result, nil
}

// sessionID reads the session bound to the credential checked by auth.
func sessionID(ctx context.Context) string {
	claims, _ := utils.GetClaimsFromContext(ctx)
	return claims.SessionID()
}

// sendToken mirrors the HTTP Authorization response header.
func sendToken(ctx context.Context, token string) {
	if token != "" {
		_ = grpc.SetHeader(ctx, metadata.Pairs(authorizationKey, "Bearer "+token))
	}
}
