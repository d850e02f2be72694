package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
)

// dailyOperationHandler handles HTTP requests for employee-level operations.
type dailyOperationHandler struct {
	dailyOpService portssvc.DailyOperationSvc
}

func newDailyOperationHandler(ds portssvc.DailyOperationSvc) *dailyOperationHandler {
	return &dailyOperationHandler{dailyOpService: ds}
}

// registerDailyOperationRoutes registers routes related to daily operations.
// Per-organization listing lives under /organizations/:id/daily-operations.
func registerDailyOperationRoutes(rg *gin.RouterGroup, dailyOpService portssvc.DailyOperationSvc) {
	h := newDailyOperationHandler(dailyOpService)

	ops := rg.Group("/daily-operations")
	{
		ops.POST("", h.createDailyOperation)
		ops.GET("/:id", h.getDailyOperation)
		ops.PUT("/:id", middleware.RequireEditRights(), h.updateDailyOperation)
		ops.DELETE("/:id", middleware.RequireDeleteRights(), h.deleteDailyOperation)
	}
}

// createDailyOperation godoc
// @Summary Record a daily operation
// @Description Records a revenue or expense against an employee. The employee must belong to the stated organization and the date may not lie in the future.
// @Tags daily-operations
// @Accept json
// @Produce json
// @Param operation body dto.CreateDailyOperationRequest true "Operation details"
// @Success 201 {object} dto.SuccessResponse{data=dto.DailyOperationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /daily-operations [post]
func (h *dailyOperationHandler) createDailyOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDailyOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	op, err := h.dailyOpService.CreateDailyOperation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "failed to record daily operation")
		return
	}
	c.JSON(http.StatusCreated, dto.Success(dto.ToDailyOperationResponse(op)))
}

// getDailyOperation godoc
// @Summary Get a daily operation by ID
// @Tags daily-operations
// @Produce json
// @Param id path string true "Daily operation ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.DailyOperationResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /daily-operations/{id} [get]
func (h *dailyOperationHandler) getDailyOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	op, err := h.dailyOpService.GetDailyOperation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to retrieve daily operation")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToDailyOperationResponse(op)))
}

// updateDailyOperation godoc
// @Summary Update a daily operation
// @Description Applies a partial update to the operation. Requires edit rights.
// @Tags daily-operations
// @Accept json
// @Produce json
// @Param id path string true "Daily operation ID"
// @Param operation body dto.UpdateDailyOperationRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.DailyOperationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /daily-operations/{id} [put]
func (h *dailyOperationHandler) updateDailyOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDailyOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	op, err := h.dailyOpService.UpdateDailyOperation(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "failed to update daily operation")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToDailyOperationResponse(op)))
}

// deleteDailyOperation godoc
// @Summary Delete a daily operation
// @Description Requires delete rights.
// @Tags daily-operations
// @Produce json
// @Param id path string true "Daily operation ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /daily-operations/{id} [delete]
func (h *dailyOperationHandler) deleteDailyOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.dailyOpService.DeleteDailyOperation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "failed to delete daily operation")
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}
