package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-bio-console/internal/app"
	"github.com/MKhiriev/go-bio-console/internal/biometric"
	"github.com/MKhiriev/go-bio-console/internal/crypto"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/service"
	"github.com/MKhiriev/go-bio-console/internal/utils"
)

var errMissingToken = errors.New("missing `authorization` metadata")

var errorCodes = []struct {
	target error
	code   codes.Code
}{
	{service.ErrInvalidDataProvided, codes.InvalidArgument},
	{biometric.ErrExtraction, codes.InvalidArgument},
	{service.ErrWrongPassword, codes.Unauthenticated},
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated},
	{service.ErrSessionRevoked, codes.Unauthenticated},
	{utils.ErrInvalidAuthorization, codes.Unauthenticated},
	{errMissingToken, codes.Unauthenticated},
	{service.ErrUserInactive, codes.PermissionDenied},
	{service.ErrInvalidStep, codes.FailedPrecondition},
	{service.ErrNotEnrolled, codes.NotFound},
	{service.ErrRecordNotFound, codes.NotFound},
	{service.ErrTooManyAttempts, codes.ResourceExhausted},
	{crypto.ErrTamperedOrCorrupt, codes.DataLoss},
}

// toStatus converts a service error into a gRPC status. Internal errors are
// logged and replaced by a generic message.
func toStatus(log *logger.Logger, err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.target) {
			if e.code == codes.DataLoss {
				return status.Error(codes.DataLoss, app.MsgIntegrityFault)
			}
			if e.code == codes.Unauthenticated && errors.Is(err, service.ErrWrongPassword) {
				return status.Error(codes.Unauthenticated, app.MsgInvalidLoginPassword)
			}
			return status.Error(e.code, err.Error())
		}
	}

	log.Err(err).Msg("gRPC call failed")
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
