package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
)

// mapError turns a gRPC status into the matching package-level or common
// error. Field violations come back as *common.ValidationError.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.InvalidArgument:
		v := &common.ValidationError{}
		for _, d := range st.Details() {
			if br, ok := d.(*errdetails.BadRequest); ok {
				for _, fv := range br.GetFieldViolations() {
					v.Add(fv.GetField(), fv.GetDescription())
				}
			}
		}
		if len(v.Fields) == 0 {
			return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
		}
		return v
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorConflict
	case codes.FailedPrecondition:
		return common.ErrorPreconditionFailed
	case codes.PermissionDenied:
		return common.ErrorForbidden
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unimplemented:
		if st.Message() == common.ErrExportDisabled.Error() {
			return common.ErrExportDisabled
		}
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	}
	return fmt.Errorf("rpc error: %s", st.Message())
}
