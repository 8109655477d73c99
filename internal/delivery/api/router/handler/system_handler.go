package handler

import (
	"log/slog"
	"net/http"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// SystemHandler serves the module catalogue and the admin dashboard.
type SystemHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewSystemHandler is the constructor for SystemHandler.
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// ListModules returns the public module catalogue.
func (h *SystemHandler) ListModules(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.ModuleCatalogue())
}

// Dashboard returns platform-wide counters for super admins.
func (h *SystemHandler) Dashboard(c echo.Context) error {
	stats, err := h.dashboardUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
