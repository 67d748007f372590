package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/utils"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
)

// publicMethods need no credential.
var publicMethods = map[string]bool{
	FullMethod("Login"): true,
}

func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstMetadata(ctx, traceIDKey)
	if _, err := uuid.Parse(traceID); err != nil {
		traceID = uuid.NewString()
	}

	l := h.logger.WithTraceID(traceID)

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))
	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// auth validates the bearer token of every non-public method and stores the
// claims in the context, like the HTTP auth middleware does.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	log := logger.FromContext(ctx)

	header := firstMetadata(ctx, authorizationKey)
	if header == "" {
		return nil, toStatus(log, errMissingToken)
	}
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return nil, toStatus(log, err)
	}

	claims, err := h.services.AuthService.Authenticate(ctx, token)
	if err != nil {
		return nil, toStatus(log, err)
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, toStatus(log, errMissingToken)
	}

	return handler(utils.WithClaims(ctx, claims, userID), req)
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
