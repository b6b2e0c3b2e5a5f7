package outcome

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Severity grades a ValidationError. The zero value is SeverityError.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

var ErrUnknownSeverity = errors.New("outcome: unknown severity")

var severityNames = [...]string{
	SeverityError:   "Error",
	SeverityWarning: "Warning",
	SeverityInfo:    "Info",
}

func (s Severity) String() string {
	if s < SeverityError || int(s) >= len(severityNames) {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityError || int(s) >= len(severityNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
	return []byte(severityNames[s]), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for i, n := range severityNames {
		if strings.EqualFold(n, name) {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}

// ValidationError is a single structured validation failure.
//
// Identifier names the field or parameter the failure pertains to and is
// empty for document-level failures. All fields may be changed after
// construction.
type ValidationError struct {
	Identifier   string   `json:"identifier,omitempty"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
	ErrorCode    string   `json:"errorCode,omitempty"`
	Severity     Severity `json:"severity"`
}

func NewValidationError(identifier, message, code string, severity Severity) ValidationError {
	return ValidationError{
		Identifier:   identifier,
		ErrorMessage: message,
		ErrorCode:    code,
		Severity:     severity,
	}
}

// ValidationMessage creates a document-level error with only a message set.
func ValidationMessage(message string) ValidationError {
	return ValidationError{ErrorMessage: message}
}

func (e ValidationError) Error() string {
	var b strings.Builder
	if e.Identifier != "" {
		b.WriteString(e.Identifier)
		b.WriteString(": ")
	}
	b.WriteString(e.ErrorMessage)
	if e.ErrorCode != "" {
		b.WriteString(" (")
		b.WriteString(e.ErrorCode)
		b.WriteString(")")
	}
	return b.String()
}

func (e ValidationError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("identifier", e.Identifier),
		slog.String("message", e.ErrorMessage),
		slog.String("code", e.ErrorCode),
		slog.String("severity", e.Severity.String()),
	)
}
