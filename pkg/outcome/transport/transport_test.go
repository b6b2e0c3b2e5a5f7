package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status outcome.Status
		http   int
		grpc   codes.Code
	}{
		{outcome.StatusOk, http.StatusOK, codes.OK},
		{outcome.StatusError, http.StatusInternalServerError, codes.Unknown},
		{outcome.StatusForbidden, http.StatusForbidden, codes.PermissionDenied},
		{outcome.StatusUnauthorized, http.StatusUnauthorized, codes.Unauthenticated},
		{outcome.StatusInvalid, http.StatusBadRequest, codes.InvalidArgument},
		{outcome.StatusNotFound, http.StatusNotFound, codes.NotFound},
		{outcome.StatusConflict, http.StatusConflict, codes.Aborted},
		{outcome.StatusCriticalError, http.StatusInternalServerError, codes.Internal},
		{outcome.StatusUnavailable, http.StatusServiceUnavailable, codes.Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.http, HTTPStatus(tt.status))
			assert.Equal(t, tt.grpc, GRPCCode(tt.status))
			assert.Equal(t, Mapping{HTTP: tt.http, GRPC: tt.grpc}, Resolve(tt.status))
		})
	}
}

func TestResolve_CoversEveryStatus(t *testing.T) {
	t.Parallel()

	for _, s := range outcome.Statuses() {
		_, ok := mappings[s]
		assert.True(t, ok, "no mapping for %s", s)
	}
}

func TestResolve_UnknownStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Resolve(outcome.StatusError), Resolve(outcome.Status(42)))
}

func TestStatusFromGRPC(t *testing.T) {
	t.Parallel()

	for _, s := range outcome.Statuses() {
		if s == outcome.StatusError {
			continue
		}
		assert.Equal(t, s, StatusFromGRPC(GRPCCode(s)), "round trip of %s", s)
	}

	assert.Equal(t, outcome.StatusError, StatusFromGRPC(codes.Unknown))
	assert.Equal(t, outcome.StatusError, StatusFromGRPC(codes.Canceled))
	assert.Equal(t, outcome.StatusConflict, StatusFromGRPC(codes.AlreadyExists))
	assert.Equal(t, outcome.StatusUnavailable, StatusFromGRPC(codes.DeadlineExceeded))
	assert.Equal(t, outcome.StatusInvalid, StatusFromGRPC(codes.OutOfRange))
	assert.Equal(t, outcome.StatusCriticalError, StatusFromGRPC(codes.DataLoss))
}
