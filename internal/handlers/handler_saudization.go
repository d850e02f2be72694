package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
)

// saudizationHandler handles HTTP requests for individual saudization records.
// Creation and per-organization listing live under /organizations/:id/saudizations.
type saudizationHandler struct {
	saudizationService portssvc.SaudizationSvc
}

func newSaudizationHandler(ss portssvc.SaudizationSvc) *saudizationHandler {
	return &saudizationHandler{saudizationService: ss}
}

func registerSaudizationRoutes(rg *gin.RouterGroup, saudizationService portssvc.SaudizationSvc) {
	h := newSaudizationHandler(saudizationService)

	saudizations := rg.Group("/saudizations")
	{
		saudizations.GET("/:id", h.getSaudization)
		saudizations.PUT("/:id", middleware.RequireEditRights(), h.updateSaudization)
		saudizations.DELETE("/:id", middleware.RequireDeleteRights(), h.deleteSaudization)
	}
}

// getSaudization godoc
// @Summary Get a saudization record by ID
// @Tags saudizations
// @Produce json
// @Param id path string true "Saudization ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.SaudizationResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /saudizations/{id} [get]
func (h *saudizationHandler) getSaudization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	record, err := h.saudizationService.GetSaudization(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to retrieve saudization record")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToSaudizationResponse(record)))
}

// updateSaudization godoc
// @Summary Update a saudization record
// @Description Applies a partial update. A resulting deported status must carry a deportation date; any other status clears it. Requires edit rights.
// @Tags saudizations
// @Accept json
// @Produce json
// @Param id path string true "Saudization ID"
// @Param record body dto.UpdateSaudizationRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.SaudizationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /saudizations/{id} [put]
func (h *saudizationHandler) updateSaudization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSaudizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	record, err := h.saudizationService.UpdateSaudization(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "failed to update saudization record")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToSaudizationResponse(record)))
}

// deleteSaudization godoc
// @Summary Delete a saudization record
// @Description Requires delete rights.
// @Tags saudizations
// @Produce json
// @Param id path string true "Saudization ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /saudizations/{id} [delete]
func (h *saudizationHandler) deleteSaudization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.saudizationService.DeleteSaudization(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "failed to delete saudization record")
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}
