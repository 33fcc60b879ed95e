package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorConflict, codes.AlreadyExists},
	{common.ErrorPreconditionFailed, codes.FailedPrecondition},
	{common.ErrorForbidden, codes.PermissionDenied},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
	{common.ErrExportDisabled, codes.Unimplemented},
	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// toStatus maps a service error to a gRPC status. Validation errors carry a
// BadRequest detail with one violation per field; unknown errors are hidden
// behind a generic Internal.
func toStatus(err error) error {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		st := status.New(codes.InvalidArgument, ve.Error())
		br := &errdetails.BadRequest{}
		for _, f := range ve.Fields {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       f.Field,
				Description: f.Message,
			})
		}
		if withDetails, derr := st.WithDetails(br); derr == nil {
			return withDetails.Err()
		}
		return st.Err()
	}

	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, e.err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
