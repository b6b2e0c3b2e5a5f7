package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Adapter runs go-playground/validator rules and reports failures as
// outcome.ValidationError values.
type Adapter struct {
	validate  *validator.Validate
	namespace bool
}

type Option func(*Adapter)

// WithNamespace makes identifiers the full path below the root struct
// ("Address.City") instead of the bare field name ("City").
func WithNamespace() Option {
	return func(a *Adapter) {
		a.namespace = true
	}
}

// WithTagName names fields after the given struct tag, e.g. "json".
// Fields without the tag, or tagged "-", keep their Go name.
func WithTagName(tag string) Option {
	return func(a *Adapter) {
		a.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func New(opts ...Option) *Adapter {
	a := &Adapter{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAdapter = New()

// Default returns the shared adapter with default options.
func Default() *Adapter {
	return defaultAdapter
}

// Validator exposes the underlying validator, e.g. to register custom rules.
func (a *Adapter) Validator() *validator.Validate {
	return a.validate
}

// Errors converts err into validation errors, one per failed field, in the
// order the validator reported them. Errors that are not field failures
// become a single document-level entry. A nil err yields nil.
func (a *Adapter) Errors(err error) []outcome.ValidationError {
	return a.convert(err, "")
}

func (a *Adapter) convert(err error, fallback string) []outcome.ValidationError {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []outcome.ValidationError{outcome.ValidationMessage(err.Error())}
	}

	out := make([]outcome.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		id := a.identifier(fe)
		if id == "" {
			id = fallback
		}
		out = append(out, outcome.NewValidationError(id, message(id, fe), fe.Tag(), outcome.SeverityError))
	}
	return out
}

func (a *Adapter) identifier(fe validator.FieldError) string {
	if !a.namespace {
		return fe.Field()
	}
	// Namespace starts with the root struct name.
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

func message(id string, fe validator.FieldError) string {
	if id == "" {
		id = "value"
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed on the '%s=%s' rule", id, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed on the '%s' rule", id, fe.Tag())
}

// Struct validates value and returns it as a successful result, or an
// Invalid result listing every failed field.
func Struct[T any](a *Adapter, value T) outcome.Result[T] {
	if err := a.validate.Struct(value); err != nil {
		return outcome.Invalid[T](a.Errors(err)...)
	}
	return outcome.Success(value)
}

// Var validates a single value against tag, reporting failures under identifier.
func Var[T any](a *Adapter, identifier string, value T, tag string) outcome.Result[T] {
	if err := a.validate.Var(value, tag); err != nil {
		return outcome.Invalid[T](a.convert(err, identifier)...)
	}
	return outcome.Success(value)
}
