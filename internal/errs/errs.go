// Package errs defines the error types returned to API clients.
//
// Every failure in this service funnels into a single JSON shape,
// *HTTPError, optionally carrying a list of field-level validation
// errors. Since the only error taxonomy here is "validation failure"
// (plus routing 404s and the generic 500 fallback), the types stay
// deliberately small.
package errs

import "strings"

// FieldError describes a single violated constraint on a named field.
//
// Example:
//
//	{ "field": "age", "error": "must not exceed 120" }
type FieldError struct {
	// Field is the wire name of the offending input (json/query/param name).
	Field string `json:"field"`

	// Error is a human-readable description of the violation.
	Error string `json:"error"`
}

// HTTPError is the response body for every failed request.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets middleware decide whether the message may be replaced.
//   - Errors: per-field validation errors; covers every violated field,
//     never just the first one.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts an HTTP status text into a stable
// machine-readable code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
