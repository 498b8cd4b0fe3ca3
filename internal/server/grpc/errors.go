package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/deadswitch/internal/api"
	"github.com/dmitrijs2005/deadswitch/internal/common"
)

// toStatus converts a service error into a gRPC status error. Internal
// failures are logged and replaced with a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	code := common.CodeOf(err)
	msg := err.Error()

	if code == common.CodeInternal {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		msg = common.Message(code)
	}

	precondition := errors.Is(err, common.ErrorNotReady) || errors.Is(err, common.ErrorTriggered)

	return api.NewStatus(api.StatusCode(code, precondition), code, msg)
}

// notFound reports whether err means the addressed record does not exist.
// Read-only queries answer those with found=false instead of an error.
func notFound(err error) bool {
	return errors.Is(err, common.ErrorNotFound)
}
