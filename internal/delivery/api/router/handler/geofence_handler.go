package handler

import (
	"net/http"

	"guardian/internal/delivery/api/response"
	"guardian/internal/domain/entity"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
}

// GeofenceHandler serves geofence management
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
	}
}

// GeofenceRequest is the full fence definition for create and replace
type GeofenceRequest struct {
	TeenID        uuid.UUID           `json:"teen_id" validate:"required"`
	Name          string              `json:"name" validate:"required,max=100"`
	Latitude      *float64            `json:"latitude" validate:"required,latitude"`
	Longitude     *float64            `json:"longitude" validate:"required,longitude"`
	Radius        float64             `json:"radius" validate:"required,gt=0"`
	Type          entity.GeofenceType `json:"type" validate:"omitempty,oneof=safe restricted"`
	NotifyOnEnter *bool               `json:"notify_on_enter"`
	NotifyOnExit  *bool               `json:"notify_on_exit"`
}

func (r *GeofenceRequest) toInput() *usecase.GeofenceInput {
	return &usecase.GeofenceInput{
		TeenID:        r.TeenID,
		Name:          r.Name,
		Latitude:      *r.Latitude,
		Longitude:     *r.Longitude,
		Radius:        r.Radius,
		Type:          r.Type,
		NotifyOnEnter: r.NotifyOnEnter,
		NotifyOnExit:  r.NotifyOnExit,
	}
}

// CreateGeofence adds a fence to one of the caller's teens
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	var req GeofenceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	fence, err := h.geofenceUC.CreateGeofence(c.Request().Context(), parentID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, fence)
}

// ListGeofences returns a teen's fences
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teenID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fences, err := h.geofenceUC.ListGeofences(c.Request().Context(), parentID, teenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fences)
}

// ReplaceGeofence overwrites a fence definition
func (h *GeofenceHandler) ReplaceGeofence(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	fenceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req GeofenceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	fence, err := h.geofenceUC.ReplaceGeofence(c.Request().Context(), parentID, fenceID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fence)
}

// DeleteGeofence removes a fence
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	fenceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.geofenceUC.DeleteGeofence(c.Request().Context(), parentID, fenceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &statusResult{Status: "success"})
}
