package outcome

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the closed set of outcome kinds a Result can carry.
// StatusOk is the zero value and the only successful status.
type Status int

const (
	StatusOk Status = iota
	StatusError
	StatusForbidden
	StatusUnauthorized
	StatusInvalid
	StatusNotFound
	StatusConflict
	StatusCriticalError
	StatusUnavailable
)

var ErrUnknownStatus = errors.New("outcome: unknown status")

var statusNames = [...]string{
	StatusOk:            "Ok",
	StatusError:         "Error",
	StatusForbidden:     "Forbidden",
	StatusUnauthorized:  "Unauthorized",
	StatusInvalid:       "Invalid",
	StatusNotFound:      "NotFound",
	StatusConflict:      "Conflict",
	StatusCriticalError: "CriticalError",
	StatusUnavailable:   "Unavailable",
}

// Statuses returns every status in declaration order.
func Statuses() []Status {
	out := make([]Status, len(statusNames))
	for i := range statusNames {
		out[i] = Status(i)
	}
	return out
}

// ParseStatus resolves a status name, ignoring case.
func ParseStatus(s string) (Status, error) {
	name := strings.TrimSpace(s)
	for i, n := range statusNames {
		if strings.EqualFold(n, name) {
			return Status(i), nil
		}
	}
	return StatusOk, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) IsSuccess() bool {
	return s == StatusOk
}

func (s Status) IsValid() bool {
	return s >= StatusOk && int(s) < len(statusNames)
}

func (s Status) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
