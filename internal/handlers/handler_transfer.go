package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
)

// transferHandler handles HTTP requests for individual sponsor transfers.
// Creation and per-organization listing live under /organizations/:id/transfers.
type transferHandler struct {
	transferService portssvc.TransferSvc
}

func newTransferHandler(ts portssvc.TransferSvc) *transferHandler {
	return &transferHandler{transferService: ts}
}

func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvc) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.GET("/:id", h.getTransfer)
		transfers.PUT("/:id", middleware.RequireEditRights(), h.updateTransfer)
		transfers.DELETE("/:id", middleware.RequireDeleteRights(), h.deleteTransfer)
	}
}

// getTransfer godoc
// @Summary Get a sponsor transfer by ID
// @Tags transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.TransferResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transfers/{id} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transfer, err := h.transferService.GetTransfer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to retrieve transfer")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToTransferResponse(transfer)))
}

// updateTransfer godoc
// @Summary Update a sponsor transfer
// @Description Applies a partial update to the transfer. Requires edit rights.
// @Tags transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID"
// @Param transfer body dto.UpdateTransferRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.TransferResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transfers/{id} [put]
func (h *transferHandler) updateTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	transfer, err := h.transferService.UpdateTransfer(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "failed to update transfer")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToTransferResponse(transfer)))
}

// deleteTransfer godoc
// @Summary Delete a sponsor transfer
// @Description Requires delete rights.
// @Tags transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transfers/{id} [delete]
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.transferService.DeleteTransfer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "failed to delete transfer")
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}
