package handler

import (
	"net/http"

	"guardian/internal/delivery/api/response"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TeenHandlerParams holds dependencies for TeenHandler, injected by Fx.
type TeenHandlerParams struct {
	fx.In

	TeenUC usecase.TeenUsecase
}

// TeenHandler serves monitored teen management
type TeenHandler struct {
	teenUC usecase.TeenUsecase
}

// NewTeenHandler is the constructor for TeenHandler
func NewTeenHandler(params TeenHandlerParams) *TeenHandler {
	return &TeenHandler{
		teenUC: params.TeenUC,
	}
}

// CreateTeenRequest represents the request body for adding a teen
type CreateTeenRequest struct {
	Name             string            `json:"name" validate:"required,max=100"`
	DeviceID         string            `json:"device_id" validate:"required,max=255"`
	PhoneNumber      *string           `json:"phone_number" validate:"omitempty,max=32"`
	Age              *int              `json:"age" validate:"omitempty,min=1,max=25"`
	ScreenTimeLimits map[string]int    `json:"screen_time_limits" validate:"omitempty,dive,keys,weekday,endkeys,min=0,max=1440"`
	BedtimeSchedule  map[string]string `json:"bedtime_schedule" validate:"omitempty,dive,keys,weekday,endkeys,clock"`
}

// CreateTeen adds a teen to the caller's account
func (h *TeenHandler) CreateTeen(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	var req CreateTeenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	teen, err := h.teenUC.CreateTeen(c.Request().Context(), parentID, &usecase.CreateTeenInput{
		Name:             req.Name,
		DeviceID:         req.DeviceID,
		PhoneNumber:      req.PhoneNumber,
		Age:              req.Age,
		ScreenTimeLimits: req.ScreenTimeLimits,
		BedtimeSchedule:  req.BedtimeSchedule,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, teen)
}

// ListTeens returns the caller's teens
func (h *TeenHandler) ListTeens(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teens, err := h.teenUC.ListTeens(c.Request().Context(), parentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, teens)
}

// GetTeen returns one of the caller's teens
func (h *TeenHandler) GetTeen(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teenID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	teen, err := h.teenUC.GetTeen(c.Request().Context(), parentID, teenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, teen)
}

// GetPairingQR renders the pairing QR code as PNG
func (h *TeenHandler) GetPairingQR(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teenID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.teenUC.GetPairingQR(c.Request().Context(), parentID, teenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
