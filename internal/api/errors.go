// Package api holds the error contract shared by the DeadSwitch server and
// client: how numeric failure codes map onto gRPC statuses and back.
package api

import (
	"strconv"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusCode maps a numeric failure code onto the closest gRPC status code.
// Code 403 is split: timing failures are preconditions, the rest are
// permission problems.
func StatusCode(code int, forbiddenPrecondition bool) codes.Code {
	switch code {
	case common.CodeInvalidInput, common.CodeInvalidPercentage, common.CodeInvalidIndex:
		return codes.InvalidArgument
	case common.CodeUnauthorized:
		return codes.Unauthenticated
	case common.CodeForbidden:
		if forbiddenPrecondition {
			return codes.FailedPrecondition
		}
		return codes.PermissionDenied
	case common.CodeNotFound:
		return codes.NotFound
	case common.CodeAlreadyExists:
		return codes.AlreadyExists
	case common.CodeAlreadyTriggered:
		return codes.FailedPrecondition
	case common.CodeLimitExceeded:
		return codes.ResourceExhausted
	default:
		return codes.Internal
	}
}

// NewStatus builds a status error carrying the numeric code in an
// ErrorInfo detail.
func NewStatus(c codes.Code, code int, msg string) error {
	st := status.New(c, msg)
	withInfo, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   strconv.Itoa(code),
		Domain:   common.ErrorDomain,
		Metadata: map[string]string{common.ErrorCodeKey: strconv.Itoa(code)},
	})
	if err != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// ErrorCode extracts the numeric failure code from a status error. Errors
// without a DeadSwitch ErrorInfo report ok=false.
func ErrorCode(err error) (int, bool) {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return 0, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != common.ErrorDomain {
			continue
		}
		n, err := strconv.Atoi(info.GetMetadata()[common.ErrorCodeKey])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
