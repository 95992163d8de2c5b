package handler

import (
	"net/http"
	"strconv"

	"guardian/internal/delivery/api/middleware"
	domainerrors "guardian/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into req and runs the validator. Errors
// are rendered by the error middleware.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	return c.Validate(req)
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

// queryInt returns 0 when the parameter is absent.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be a non-negative integer")
	}

	return value, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WrapMessage(name + " must be a boolean")
	}

	return value, nil
}

var errMissingParent = domainerrors.NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "invalid parent ID in token", "")

// requireParent reads the parent set by the auth middleware.
func requireParent(c echo.Context) (uuid.UUID, error) {
	parentID, ok := middleware.GetParentID(c)
	if !ok {
		return uuid.Nil, errMissingParent
	}

	return parentID, nil
}

// statusResult is the body of device upserts and simple acknowledgements.
type statusResult struct {
	Status string `json:"status"`
}
