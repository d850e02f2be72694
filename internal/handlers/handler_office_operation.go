package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
)

// officeOperationHandler handles HTTP requests for office-level operations.
type officeOperationHandler struct {
	officeOpService portssvc.OfficeOperationSvc
}

func newOfficeOperationHandler(os portssvc.OfficeOperationSvc) *officeOperationHandler {
	return &officeOperationHandler{officeOpService: os}
}

// registerOfficeOperationRoutes registers routes related to office operations.
func registerOfficeOperationRoutes(rg *gin.RouterGroup, officeOpService portssvc.OfficeOperationSvc) {
	h := newOfficeOperationHandler(officeOpService)

	ops := rg.Group("/office-operations")
	{
		ops.POST("", h.createOfficeOperation)
		ops.GET("", h.listOfficeOperations)
		ops.GET("/:id", h.getOfficeOperation)
		ops.PUT("/:id", middleware.RequireEditRights(), h.updateOfficeOperation)
		ops.DELETE("/:id", middleware.RequireDeleteRights(), h.deleteOfficeOperation)
	}
}

// createOfficeOperation godoc
// @Summary Record an office operation
// @Description Records an office-level revenue or expense not tied to any employee
// @Tags office-operations
// @Accept json
// @Produce json
// @Param operation body dto.CreateOfficeOperationRequest true "Operation details"
// @Success 201 {object} dto.SuccessResponse{data=dto.OfficeOperationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /office-operations [post]
func (h *officeOperationHandler) createOfficeOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOfficeOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	op, err := h.officeOpService.CreateOfficeOperation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "failed to record office operation")
		return
	}
	c.JSON(http.StatusCreated, dto.Success(dto.ToOfficeOperationResponse(op)))
}

// listOfficeOperations godoc
// @Summary List office operations
// @Tags office-operations
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.OfficeOperationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /office-operations [get]
func (h *officeOperationHandler) listOfficeOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	ops, total, err := h.officeOpService.ListOfficeOperations(c.Request.Context(), params.Limit, params.Offset())
	if err != nil {
		respondError(c, logger, err, "failed to list office operations")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessPaged(dto.ToOfficeOperationListResponse(ops), dto.NewPagination(total, params.Page, params.Limit)))
}

// getOfficeOperation godoc
// @Summary Get an office operation by ID
// @Tags office-operations
// @Produce json
// @Param id path string true "Office operation ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.OfficeOperationResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /office-operations/{id} [get]
func (h *officeOperationHandler) getOfficeOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	op, err := h.officeOpService.GetOfficeOperation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to retrieve office operation")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToOfficeOperationResponse(op)))
}

// updateOfficeOperation godoc
// @Summary Update an office operation
// @Description Applies a partial update to the operation. Requires edit rights.
// @Tags office-operations
// @Accept json
// @Produce json
// @Param id path string true "Office operation ID"
// @Param operation body dto.UpdateOfficeOperationRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.OfficeOperationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /office-operations/{id} [put]
func (h *officeOperationHandler) updateOfficeOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateOfficeOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	op, err := h.officeOpService.UpdateOfficeOperation(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "failed to update office operation")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToOfficeOperationResponse(op)))
}

// deleteOfficeOperation godoc
// @Summary Delete an office operation
// @Description Requires delete rights.
// @Tags office-operations
// @Produce json
// @Param id path string true "Office operation ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /office-operations/{id} [delete]
func (h *officeOperationHandler) deleteOfficeOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.officeOpService.DeleteOfficeOperation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "failed to delete office operation")
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}
