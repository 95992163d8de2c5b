package handler

import (
	"net/http"

	"guardian/internal/delivery/api/response"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC     usecase.AlertUsecase
	DashboardUC usecase.DashboardUsecase
}

// AlertHandler serves the alert list and the per-teen dashboard
type AlertHandler struct {
	alertUC     usecase.AlertUsecase
	dashboardUC usecase.DashboardUsecase
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC:     params.AlertUC,
		dashboardUC: params.DashboardUC,
	}
}

// ListAlerts returns the caller's alerts, newest first
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	unreadOnly, err := queryBool(c, "unread_only")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), parentID, unreadOnly, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// MarkAlertRead marks an alert read
func (h *AlertHandler) MarkAlertRead(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	alertID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.alertUC.MarkAlertRead(c.Request().Context(), parentID, alertID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &statusResult{Status: "success"})
}

// GetDashboard returns the overview of one teen
func (h *AlertHandler) GetDashboard(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	teenID, err := pathUUID(c, "teen_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.dashboardUC.GetDashboard(c.Request().Context(), parentID, teenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}
