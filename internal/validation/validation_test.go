package validation

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinsis/paramdemo/internal/errs"
)

type samplePayload struct {
	Name    string `json:"name" validate:"required"`
	Count   int    `query:"count" validate:"gte=1,lte=100"`
	Kind    string `query:"kind" validate:"required,oneof=big small"`
	Comment string `json:"comment" validate:"omitempty,min=3,max=5"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

func fieldMap(fieldErrors []errs.FieldError) map[string]string {
	m := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		m[fe.Field] = fe.Error
	}
	return m
}

func TestExtractValidationErrorUsesWireNames(t *testing.T) {
	payload := &samplePayload{Count: 200, Kind: "huge", Comment: "ab"}

	msg, fieldErrors := validateStruct(payload)

	require.Equal(t, "Validation failed", msg)
	m := fieldMap(fieldErrors)

	assert.Equal(t, "is required", m["name"])
	assert.Equal(t, "must not exceed 100", m["count"])
	assert.Equal(t, "must be one of: big small", m["kind"])
	assert.Equal(t, "must be at least 3 characters", m["comment"])
}

func TestExtractValidationErrorReportsEveryField(t *testing.T) {
	payload := &samplePayload{}

	_, fieldErrors := validateStruct(payload)

	// name missing, count below 1, kind missing: three entries, never
	// just the first violation.
	require.Len(t, fieldErrors, 3)
}

func TestExtractCustomValidationErrors(t *testing.T) {
	err := CustomValidationErrors{
		{Field: "frobnicate", Message: "is not a recognized parameter"},
	}

	msg, fieldErrors := extractValidationError(err)

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "frobnicate", fieldErrors[0].Field)
}

func TestExtraQueryParamsProducesCustomErrors(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?limit=5&zebra=1", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := extraQueryParams(c, []string{"limit"})

	var customErrors CustomValidationErrors
	require.True(t, errors.As(err, &customErrors))
	require.Len(t, customErrors, 1)
	assert.Equal(t, "zebra", customErrors[0].Field)

	assert.NoError(t, extraQueryParams(c, []string{"limit", "zebra"}))
}

type closedQueryPayload struct {
	Limit int `query:"limit" validate:"gte=0"`
}

func (p *closedQueryPayload) Validate() error {
	return Struct(p)
}

func (p *closedQueryPayload) AllowedQueryParams() []string {
	return []string{"limit"}
}

func TestBindAndValidateRejectsUndeclaredQueryKeys(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?limit=5&zebra=1&alpha=2", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := BindAndValidate(c, &closedQueryPayload{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Status)

	// Sorted for deterministic output.
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, "alpha", httpErr.Errors[0].Field)
	assert.Equal(t, "zebra", httpErr.Errors[1].Field)
}

func TestBindAndValidateBindsDeclaredQueryKeys(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?limit=5", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	payload := &closedQueryPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, 5, payload.Limit)
}

func TestBindAndValidatePassesBindErrorsThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?limit=five", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := BindAndValidate(c, &closedQueryPayload{})

	var echoErr *echo.HTTPError
	require.True(t, errors.As(err, &echoErr))
	assert.Equal(t, 400, echoErr.Code)
}
