// Package validation adapts github.com/go-playground/validator/v10 to
// outcome results.
//
// Struct and Var run validator rules and return either a successful
// outcome.Result or an Invalid one whose validation errors list each failed
// field in the order the validator reported them. The error code of each
// entry is the failed rule tag (e.g. "required", "email").
package validation
