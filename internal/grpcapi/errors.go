package grpcapi

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/csaide/riftdb/internal/broker"
)

// toStatus maps a broker error to a gRPC status by inspecting its Code via
// errors.As, so the mapping stays centralized instead of matching on error
// message text at every call site.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	var berr *broker.Error
	if !errors.As(err, &berr) {
		return status.Errorf(codes.Internal, "%v", err)
	}

	switch berr.Code {
	case broker.CodeTopicNotFound, broker.CodeSubscriptionNotFound:
		return status.Error(codes.NotFound, berr.Error())
	case broker.CodeTopicAlreadyExists, broker.CodeSubscriptionAlreadyExist:
		return status.Error(codes.AlreadyExists, berr.Error())
	case broker.CodeAlreadySubscribed:
		return status.Error(codes.FailedPrecondition, berr.Error())
	case broker.CodeUnknownLease:
		return status.Error(codes.FailedPrecondition, berr.Error())
	case broker.CodeInvalidArgument:
		return status.Error(codes.InvalidArgument, berr.Error())
	default:
		return status.Error(codes.Internal, berr.Error())
	}
}
