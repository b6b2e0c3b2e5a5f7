package outcome

import "reflect"

// Outcome is the non-generic view of a Result. It is what call sites hold
// when they do not know the payload type.
type Outcome interface {
	// Status returns the outcome kind
	Status() Status
	// IsSuccess returns true only for Ok
	IsSuccess() bool
	// Errors returns the plain error messages in insertion order
	Errors() []string
	// ValidationErrors returns the structured validation failures in insertion order
	ValidationErrors() []ValidationError
	SuccessMessage() string
	CorrelationID() string
	// GetValue returns the payload, or nil when there is none
	GetValue() any
	// ValueType returns the static payload type
	ValueType() reflect.Type
}

// Unit is the payload of results that carry no value.
type Unit struct{}
