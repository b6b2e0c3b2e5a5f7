package transport

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Mapping is a resolved pair of transport statuses for one outcome status.
type Mapping struct {
	HTTP int        // net/http compatible status code
	GRPC codes.Code // gRPC status code
}

var mappings = map[outcome.Status]Mapping{
	outcome.StatusOk:            {HTTP: http.StatusOK, GRPC: codes.OK},
	outcome.StatusError:         {HTTP: http.StatusInternalServerError, GRPC: codes.Unknown},
	outcome.StatusForbidden:     {HTTP: http.StatusForbidden, GRPC: codes.PermissionDenied},
	outcome.StatusUnauthorized:  {HTTP: http.StatusUnauthorized, GRPC: codes.Unauthenticated},
	outcome.StatusInvalid:       {HTTP: http.StatusBadRequest, GRPC: codes.InvalidArgument},
	outcome.StatusNotFound:      {HTTP: http.StatusNotFound, GRPC: codes.NotFound},
	outcome.StatusConflict:      {HTTP: http.StatusConflict, GRPC: codes.Aborted},
	outcome.StatusCriticalError: {HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
	outcome.StatusUnavailable:   {HTTP: http.StatusServiceUnavailable, GRPC: codes.Unavailable},
}

// Resolve returns both transport statuses for s. Statuses outside the closed
// set resolve like StatusError.
func Resolve(s outcome.Status) Mapping {
	if m, ok := mappings[s]; ok {
		return m
	}
	return mappings[outcome.StatusError]
}

func HTTPStatus(s outcome.Status) int {
	return Resolve(s).HTTP
}

func GRPCCode(s outcome.Status) codes.Code {
	return Resolve(s).GRPC
}

// StatusFromGRPC is the inverse projection. Codes that several statuses could
// claim resolve to the closest one; anything unknown becomes StatusError.
func StatusFromGRPC(c codes.Code) outcome.Status {
	switch c {
	case codes.OK:
		return outcome.StatusOk
	case codes.PermissionDenied:
		return outcome.StatusForbidden
	case codes.Unauthenticated:
		return outcome.StatusUnauthorized
	case codes.InvalidArgument, codes.OutOfRange:
		return outcome.StatusInvalid
	case codes.NotFound:
		return outcome.StatusNotFound
	case codes.Aborted, codes.AlreadyExists, codes.FailedPrecondition:
		return outcome.StatusConflict
	case codes.Internal, codes.DataLoss:
		return outcome.StatusCriticalError
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return outcome.StatusUnavailable
	default:
		return outcome.StatusError
	}
}
