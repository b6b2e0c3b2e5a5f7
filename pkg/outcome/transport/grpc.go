package transport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/void"
)

// Domain is the ErrorInfo domain attached to encoded outcomes.
const Domain = "outcome"

const (
	metaStatus   = "status"
	metaError    = "error."
	metaCode     = "violation.%d.code"
	metaSeverity = "violation.%d.severity"
)

// GRPCStatus encodes o as a gRPC status. A successful outcome yields an OK
// status whose Err is nil.
//
// Failures carry an ErrorInfo (reason, exact status and error messages), a
// BadRequest with one field violation per validation error and, when set, a
// RequestInfo holding the correlation id.
func GRPCStatus(o outcome.Outcome) *status.Status {
	code := GRPCCode(o.Status())
	if o.IsSuccess() {
		return status.New(code, o.SuccessMessage())
	}

	errs := o.Errors()
	msg := strings.Join(errs, "; ")
	if msg == "" {
		msg = o.Status().String()
	}
	base := status.New(code, msg)

	info := &errdetails.ErrorInfo{
		Reason:   Reason(o.Status()),
		Domain:   Domain,
		Metadata: map[string]string{metaStatus: o.Status().String()},
	}
	for i, e := range errs {
		info.Metadata[metaError+strconv.Itoa(i)] = e
	}

	var details []*errdetails.BadRequest_FieldViolation
	for i, ve := range o.ValidationErrors() {
		details = append(details, &errdetails.BadRequest_FieldViolation{
			Field:       ve.Identifier,
			Description: ve.ErrorMessage,
		})
		info.Metadata[fmt.Sprintf(metaCode, i)] = ve.ErrorCode
		info.Metadata[fmt.Sprintf(metaSeverity, i)] = ve.Severity.String()
	}

	attach := []protoadapt.MessageV1{info}
	if len(details) > 0 {
		attach = append(attach, &errdetails.BadRequest{FieldViolations: details})
	}
	if id := o.CorrelationID(); id != "" {
		attach = append(attach, &errdetails.RequestInfo{RequestId: id})
	}

	// If details cannot be attached, fall back to the bare status.
	with, err := base.WithDetails(attach...)
	if err != nil {
		return base
	}
	return with
}

// GRPCError is GRPCStatus(o).Err(); it is nil for a successful outcome.
func GRPCError(o outcome.Outcome) error {
	return GRPCStatus(o).Err()
}

// FromGRPCError decodes an error produced by GRPCError back into a void
// result. Errors that are not gRPC statuses become StatusError results
// carrying err.Error().
func FromGRPCError(err error) void.Result {
	if err == nil {
		return void.Success()
	}

	st, ok := status.FromError(err)
	if !ok {
		return void.Error(err.Error())
	}

	s := StatusFromGRPC(st.Code())
	var (
		messages    []string
		violations  []outcome.ValidationError
		correlation string
		info        *errdetails.ErrorInfo
	)

	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == Domain {
				info = d
			}
		case *errdetails.BadRequest:
			for _, fv := range d.GetFieldViolations() {
				violations = append(violations, outcome.ValidationError{
					Identifier:   fv.GetField(),
					ErrorMessage: fv.GetDescription(),
				})
			}
		case *errdetails.RequestInfo:
			correlation = d.GetRequestId()
		}
	}

	if info != nil {
		md := info.GetMetadata()
		if parsed, perr := outcome.ParseStatus(md[metaStatus]); perr == nil {
			s = parsed
		}
		for i := 0; ; i++ {
			e, ok := md[metaError+strconv.Itoa(i)]
			if !ok {
				break
			}
			messages = append(messages, e)
		}
		for i := range violations {
			violations[i].ErrorCode = md[fmt.Sprintf(metaCode, i)]
			var sev outcome.Severity
			if sev.UnmarshalText([]byte(md[fmt.Sprintf(metaSeverity, i)])) == nil {
				violations[i].Severity = sev
			}
		}
	} else if st.Message() != "" {
		messages = []string{st.Message()}
	}

	if s == outcome.StatusOk {
		return void.Success()
	}
	return build(s, messages, violations).WithCorrelationID(correlation)
}

func build(s outcome.Status, messages []string, violations []outcome.ValidationError) void.Result {
	switch s {
	case outcome.StatusInvalid:
		return void.Invalid(violations...).WithErrors(messages...)
	case outcome.StatusForbidden:
		return void.Forbidden().WithErrors(messages...)
	case outcome.StatusUnauthorized:
		return void.Unauthorized().WithErrors(messages...)
	case outcome.StatusNotFound:
		return void.NotFound(messages...)
	case outcome.StatusConflict:
		return void.Conflict(messages...)
	case outcome.StatusCriticalError:
		return void.CriticalError(messages...)
	case outcome.StatusUnavailable:
		return void.Unavailable(messages...)
	default:
		return void.Error(messages...)
	}
}

// Reason renders a status as an UPPER_SNAKE_CASE ErrorInfo reason,
// e.g. StatusNotFound -> "NOT_FOUND".
func Reason(s outcome.Status) string {
	name := s.String()
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// IsOutcomeError reports whether err carries an ErrorInfo written by GRPCStatus.
func IsOutcomeError(err error) bool {
	var se interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &se) {
		return false
	}
	for _, d := range se.GRPCStatus().Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return true
		}
	}
	return false
}
