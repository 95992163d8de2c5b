package handler

import (
	"net/http"
	"time"

	"guardian/internal/delivery/api/response"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler serves location ingest and history
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
	}
}

// IngestLocationRequest is one position report from a teen's device.
// Coordinates are pointers so that 0 is accepted while absence is not.
type IngestLocationRequest struct {
	TeenID    uuid.UUID  `json:"teen_id" validate:"required"`
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Accuracy  *float64   `json:"accuracy" validate:"omitempty,min=0"`
	Address   *string    `json:"address" validate:"omitempty,max=500"`
	Timestamp *time.Time `json:"timestamp"`
}

// IngestLocationResponse acknowledges a stored sample
type IngestLocationResponse struct {
	Status     string    `json:"status"`
	LocationID uuid.UUID `json:"location_id"`
}

// IngestLocation stores a sample and evaluates the teen's geofences
func (h *LocationHandler) IngestLocation(c echo.Context) error {
	var req IngestLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sample, err := h.locationUC.IngestLocation(c.Request().Context(), &usecase.IngestLocationInput{
		TeenID:    req.TeenID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
		Address:   req.Address,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &IngestLocationResponse{
		Status:     "success",
		LocationID: sample.ID,
	})
}

// GetLocationHistory returns recent samples, newest first
func (h *LocationHandler) GetLocationHistory(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teenID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	samples, err := h.locationUC.GetLocationHistory(c.Request().Context(), parentID, teenID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, samples)
}

// GetCurrentLocation returns the newest sample
func (h *LocationHandler) GetCurrentLocation(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teenID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sample, err := h.locationUC.GetCurrentLocation(c.Request().Context(), parentID, teenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sample)
}
