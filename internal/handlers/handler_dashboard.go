package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
)

// dashboardHandler serves the aggregated office dashboard.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/financials/office-operations", h.getOfficeOperationFinancials)
		dashboard.GET("/financials/daily-operations", h.getDailyOperationFinancials)
	}
}

// getStats godoc
// @Summary Get the dashboard snapshot
// @Description Returns entity counts, permit expiry counts, available sponsorship slots and windowed financial summaries. Counts are never windowed; month and year only scope the summaries. A month without a year is ignored.
// @Tags dashboard
// @Produce json
// @Param month query int false "Month filter (1-12, requires year)"
// @Param year query int false "Year filter"
// @Success 200 {object} dto.SuccessResponse{data=domain.DashboardStats}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.dashboardService.Stats(c.Request.Context(), queryIntPtr(c, "month"), queryIntPtr(c, "year"))
	if err != nil {
		respondError(c, logger, err, "failed to compose dashboard stats")
		return
	}
	c.JSON(http.StatusOK, dto.Success(stats))
}

// getOfficeOperationFinancials godoc
// @Summary Sum office operations over an optional month/year window
// @Tags dashboard
// @Produce json
// @Param month query int false "Month filter (1-12, requires year)"
// @Param year query int false "Year filter"
// @Success 200 {object} dto.SuccessResponse{data=domain.FinancialSummary}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/financials/office-operations [get]
func (h *dashboardHandler) getOfficeOperationFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.dashboardService.OfficeOperationFinancials(c.Request.Context(), queryIntPtr(c, "month"), queryIntPtr(c, "year"))
	if err != nil {
		respondError(c, logger, err, "failed to sum office operations")
		return
	}
	c.JSON(http.StatusOK, dto.Success(summary))
}

// getDailyOperationFinancials godoc
// @Summary Sum daily operations over an optional month/year window
// @Tags dashboard
// @Produce json
// @Param month query int false "Month filter (1-12, requires year)"
// @Param year query int false "Year filter"
// @Success 200 {object} dto.SuccessResponse{data=domain.FinancialSummary}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/financials/daily-operations [get]
func (h *dashboardHandler) getDailyOperationFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.dashboardService.DailyOperationFinancials(c.Request.Context(), queryIntPtr(c, "month"), queryIntPtr(c, "year"))
	if err != nil {
		respondError(c, logger, err, "failed to sum daily operations")
		return
	}
	c.JSON(http.StatusOK, dto.Success(summary))
}
