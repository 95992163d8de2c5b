package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string            `json:"email" validate:"required,email"`
	Date     string            `json:"date" validate:"omitempty,date"`
	Bedtime  map[string]string `json:"bedtime" validate:"omitempty,dive,keys,weekday,endkeys,clock"`
	Radius   float64           `json:"radius" validate:"gt=0"`
	Internal string            `json:"-"`
}

func TestCustomValidator_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:   "not-an-email",
		Date:    "2024/03/01",
		Bedtime: map[string]string{"funday": "25:00"},
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Field)
	}

	assert.Contains(t, names, "email")
	assert.Contains(t, names, "date")
	assert.Contains(t, names, "radius")
	assert.GreaterOrEqual(t, len(fields), 4)
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:   "parent@example.com",
		Date:    "2024-03-01",
		Bedtime: map[string]string{"Monday": "21:30"},
		Radius:  50,
	})
	assert.NoError(t, err)
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestStrictJSONSerializer_RejectsUnknownFields(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = StrictJSONSerializer{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","extra":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var body sampleRequest
	err := c.Bind(&body)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestStrictJSONSerializer_DecodesKnownFields(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = StrictJSONSerializer{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","radius":25}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var body sampleRequest
	require.NoError(t, c.Bind(&body))
	assert.Equal(t, "a@b.co", body.Email)
	assert.Equal(t, 25.0, body.Radius)
}
