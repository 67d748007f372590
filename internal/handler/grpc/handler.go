package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/service"
	"github.com/MKhiriev/go-bio-console/models"
)

// ServiceName is the fully qualified name of the biometric gRPC service.
const ServiceName = "bioconsole.v1.Biometric"

// BiometricServer is the server side of [ServiceName]. Messages are the
// same structs the HTTP API uses, carried by [Codec].
type BiometricServer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
	Enroll(ctx context.Context, req *models.CaptureRequest) (*models.EnrollResult, error)
	Verify(ctx context.Context, req *models.CaptureRequest) (*models.VerifyResult, error)
	Toggle(ctx context.Context, req *models.ToggleRequest) (*models.ToggleResult, error)
}

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register adds the biometric service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&serviceDesc, h)
}

// ServerOptions returns the codec and interceptors the handler relies on.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ForceServerCodec(Codec{}),
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.auth),
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BiometricServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Login", BiometricServer.Login),
		unary("Enroll", BiometricServer.Enroll),
		unary("Verify", BiometricServer.Verify),
		unary("Toggle", BiometricServer.Toggle),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bioconsole/v1/biometric",
}

// unary builds the method descriptor protoc would generate for a unary call.
func unary[Req, Resp any](method string, call func(BiometricServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BiometricServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BiometricServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod returns the "/service/method" path of a method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}
