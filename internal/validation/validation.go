// Package validation contains the logic for validating request data.
//
// It binds path parameters, query parameters, and the request body into
// a typed payload, applies the rules declared in `validate` struct tags
// via the validator library, and extracts violations into a
// field-indexed format the client can understand.
//
// The contract this package upholds for handlers: a handler never
// observes an out-of-range or wrong-shape value. Binding and validation
// both happen before the handler body executes, and a failed request is
// rejected with an error entry for every violated field.
package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/chinsis/paramdemo/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,gte=1"`)
//   - Implement Validate() error that runs validation.Struct(req)
//   - Return validator.ValidationErrors (or CustomValidationErrors for
//     rules that tags cannot express)
type Validatable interface {
	Validate() error
}

// BodyBinder overrides how the request body is bound. Payloads whose
// body is a bare nested value (rather than the struct's own JSON shape)
// implement this to decode into the right field.
type BodyBinder interface {
	BindBody(c echo.Context) error
}

// Normalizer applies declared defaults after binding and before
// validation. Implementations may consult the request to distinguish
// "parameter absent" from "parameter present but empty".
type Normalizer interface {
	Normalize(c echo.Context)
}

// QueryPolicy marks a payload as a closed query shape: any query key
// outside the returned set rejects the request.
type QueryPolicy interface {
	AllowedQueryParams() []string
}

// CustomValidationError represents a single validation issue for a
// specific field, used for rules that cannot be expressed via tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

// newValidator builds the shared validator instance. Field names in
// error output come from the json/query/param tags so that clients see
// wire names ("order_by"), not Go names ("OrderBy").
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Struct runs tag validation on v using the shared validator instance.
// Request types call this from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. bind path params, query params, and body (in that order)
//  2. reject undeclared query keys if the payload is a closed shape
//  3. apply declared defaults (Normalizer)
//  4. payload.Validate() applies the tag rules
//
// Returns *errs.HTTPError (400) with field-level errors on validation
// failure. Bind errors from Echo (type mismatches, malformed JSON,
// unsupported media type) are returned as-is; the global error handler
// already maps *echo.HTTPError into the response schema.
//
// payload must be a pointer to a struct so binding can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			return err
		}
		return errs.NewBadRequestError(err.Error(), false, nil, nil)
	}

	if policy, ok := payload.(QueryPolicy); ok {
		if err := extraQueryParams(c, policy.AllowedQueryParams()); err != nil {
			msg, fieldErrors := extractValidationError(err)
			return errs.NewBadRequestError(msg, true, nil, fieldErrors)
		}
	}

	if n, ok := payload.(Normalizer); ok {
		n.Normalize(c)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bind populates payload from the request. Echo's default binder only
// binds query params for GET/DELETE inside Bind(), so the three phases
// are invoked explicitly here; every method gets path, query, and body.
func bind(c echo.Context, payload Validatable) error {
	binder := new(echo.DefaultBinder)

	if err := binder.BindPathParams(c, payload); err != nil {
		return err
	}
	if err := binder.BindQueryParams(c, payload); err != nil {
		return err
	}

	if bb, ok := payload.(BodyBinder); ok {
		return bb.BindBody(c)
	}
	return binder.BindBody(c, payload)
}

// extraQueryParams returns CustomValidationErrors naming every query
// key not in allowed, sorted for deterministic output, or nil when the
// shape is clean.
func extraQueryParams(c echo.Context, allowed []string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = struct{}{}
	}

	var extra []string
	for key := range c.QueryParams() {
		if _, ok := allowedSet[key]; !ok {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)

	var customErrors CustomValidationErrors
	for _, key := range extra {
		customErrors = append(customErrors, CustomValidationError{
			Field:   key,
			Message: "is not a recognized parameter",
		})
	}
	return customErrors
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		customErrors, ok := err.(CustomValidationErrors)
		if !ok {
			return err.Error(), []errs.FieldError{}
		}
		for _, custom := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: custom.Field,
				Error: custom.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	// Convert validator.ValidationErrors into user-friendly messages.
	for _, fieldErr := range validationErrors {
		var msg string

		switch fieldErr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min on strings is a length; on numbers a value.
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fieldErr.Param())
			}

		case "max":
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fieldErr.Param())
			}

		case "gte":
			msg = fmt.Sprintf("must be at least %s", fieldErr.Param())

		case "lte":
			msg = fmt.Sprintf("must not exceed %s", fieldErr.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fieldErr.Param())

		case "alpha":
			msg = "must contain only letters"

		default:
			// Fallback for tags not explicitly handled above.
			if fieldErr.Param() != "" {
				msg = fmt.Sprintf("%s:%s", fieldErr.Tag(), fieldErr.Param())
			} else {
				msg = fieldErr.Tag()
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fieldErr.Field(),
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
