package handler

import (
	"net/http"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
)

type DashboardHandler struct {
	errorWriter
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, debug bool) *DashboardHandler {
	return &DashboardHandler{
		errorWriter:      errorWriter{debug: debug},
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.GetSummary(r.Context())
	if err != nil {
		h.write(w, err, "get dashboard")
		return
	}

	response.JSON(w, http.StatusOK, dashboard)
}
