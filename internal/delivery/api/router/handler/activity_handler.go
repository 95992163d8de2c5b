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

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler serves app usage, app controls and web history
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
	}
}

// AppUsageRequest is a daily usage total reported by a teen's device
type AppUsageRequest struct {
	TeenID      uuid.UUID  `json:"teen_id" validate:"required"`
	AppName     string     `json:"app_name" validate:"required,max=200"`
	PackageName string     `json:"package_name" validate:"required,max=255"`
	UsageTime   int        `json:"usage_time" validate:"min=0"`
	Date        string     `json:"date" validate:"required,date"`
	LastUsed    *time.Time `json:"last_used"`
}

// AppControlRequest is a parent's rule for one app
type AppControlRequest struct {
	TeenID      uuid.UUID `json:"teen_id" validate:"required"`
	PackageName string    `json:"package_name" validate:"required,max=255"`
	IsBlocked   bool      `json:"is_blocked"`
	TimeLimit   *int      `json:"time_limit" validate:"omitempty,min=0,max=1440"`
}

// WebVisitRequest is a visited URL reported by a teen's device
type WebVisitRequest struct {
	TeenID    uuid.UUID  `json:"teen_id" validate:"required"`
	URL       string     `json:"url" validate:"required,max=2048"`
	Title     string     `json:"title" validate:"max=500"`
	Timestamp *time.Time `json:"timestamp"`
}

type appUsageResult struct {
	Status  string    `json:"status"`
	UsageID uuid.UUID `json:"usage_id"`
}

type webVisitResult struct {
	Status    string    `json:"status"`
	HistoryID uuid.UUID `json:"history_id"`
}

func upsertStatus(result *usecase.UpsertResult) string {
	if result.Created {
		return "created"
	}

	return "updated"
}

// RecordAppUsage upserts the day's usage for one app
func (h *ActivityHandler) RecordAppUsage(c echo.Context) error {
	var req AppUsageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.activityUC.RecordAppUsage(c.Request().Context(), &usecase.AppUsageInput{
		TeenID:      req.TeenID,
		AppName:     req.AppName,
		PackageName: req.PackageName,
		UsageTime:   req.UsageTime,
		Date:        req.Date,
		LastUsed:    req.LastUsed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &appUsageResult{
		Status:  upsertStatus(result),
		UsageID: result.ID,
	})
}

// ListAppUsage returns usage records, optionally for one date
func (h *ActivityHandler) ListAppUsage(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teenID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	usages, err := h.activityUC.ListAppUsage(c.Request().Context(), parentID, teenID, c.QueryParam("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usages)
}

// SetAppControl upserts the rule for one app
func (h *ActivityHandler) SetAppControl(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	var req AppControlRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	control, err := h.activityUC.SetAppControl(c.Request().Context(), parentID, &usecase.AppControlInput{
		TeenID:      req.TeenID,
		PackageName: req.PackageName,
		IsBlocked:   req.IsBlocked,
		TimeLimit:   req.TimeLimit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, control)
}

// ListAppControls returns a teen's app rules
func (h *ActivityHandler) ListAppControls(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teenID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	controls, err := h.activityUC.ListAppControls(c.Request().Context(), parentID, teenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, controls)
}

// RecordWebVisit upserts a visited URL
func (h *ActivityHandler) RecordWebVisit(c echo.Context) error {
	var req WebVisitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.activityUC.RecordWebVisit(c.Request().Context(), &usecase.WebVisitInput{
		TeenID:    req.TeenID,
		URL:       req.URL,
		Title:     req.Title,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &webVisitResult{
		Status:    upsertStatus(result),
		HistoryID: result.ID,
	})
}

// ListWebHistory returns recent visits, newest first
func (h *ActivityHandler) ListWebHistory(c echo.Context) error {
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

	visits, err := h.activityUC.ListWebHistory(c.Request().Context(), parentID, teenID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visits)
}
