package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
)

// organizationHandler handles HTTP requests related to organizations and
// their nested resources.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvc
	totalsService       portssvc.TotalsSvc
	dailyOpService      portssvc.DailyOperationSvc
	transferService     portssvc.TransferSvc
	saudizationService  portssvc.SaudizationSvc
}

func newOrganizationHandler(
	os portssvc.OrganizationSvc,
	ts portssvc.TotalsSvc,
	ds portssvc.DailyOperationSvc,
	trs portssvc.TransferSvc,
	ss portssvc.SaudizationSvc,
) *organizationHandler {
	return &organizationHandler{
		organizationService: os,
		totalsService:       ts,
		dailyOpService:      ds,
		transferService:     trs,
		saudizationService:  ss,
	}
}

// registerOrganizationRoutes registers routes related to organizations.
func registerOrganizationRoutes(
	rg *gin.RouterGroup,
	organizationService portssvc.OrganizationSvc,
	totalsService portssvc.TotalsSvc,
	dailyOpService portssvc.DailyOperationSvc,
	transferService portssvc.TransferSvc,
	saudizationService portssvc.SaudizationSvc,
) {
	h := newOrganizationHandler(organizationService, totalsService, dailyOpService, transferService, saudizationService)

	organizations := rg.Group("/organizations")
	{
		organizations.POST("", h.createOrganization)
		organizations.GET("", h.listOrganizations)
		organizations.GET("/:id", h.getOrganization)
		organizations.PUT("/:id", middleware.RequireEditRights(), h.updateOrganization)
		organizations.DELETE("/:id", middleware.RequireDeleteRights(), h.deleteOrganization)

		organizations.GET("/:id/employees/totals", h.getOrganizationTotals)
		organizations.GET("/:id/employees/count", h.countEmployees)
		organizations.GET("/:id/daily-operations", h.listDailyOperations)
		organizations.GET("/:id/daily-operations/count", h.countDailyOperations)
		organizations.GET("/:id/daily-operations/totals", h.getDailyOperationTotals)

		organizations.POST("/:id/transfers", h.createTransfer)
		organizations.GET("/:id/transfers", h.listTransfers)

		organizations.POST("/:id/saudizations", h.createSaudization)
		organizations.GET("/:id/saudizations", h.listSaudizations)
	}
}

// createOrganization godoc
// @Summary Create a new organization
// @Description Registers a sponsor organization with its owner and subscription details
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.SuccessResponse{data=dto.OrganizationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	org, err := h.organizationService.CreateOrganization(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "failed to create organization")
		return
	}

	enriched, err := h.organizationService.GetOrganization(c.Request.Context(), org.OrganizationID)
	if err != nil {
		respondError(c, logger, err, "failed to load created organization")
		return
	}
	c.JSON(http.StatusCreated, dto.Success(dto.ToOrganizationResponse(enriched)))
}

// listOrganizations godoc
// @Summary List organizations
// @Description Returns one page of organizations, each enriched with its sponsor transfer total. The optional name filter matches on word boundaries.
// @Tags organizations
// @Produce json
// @Param name query string false "Owner name filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.OrganizationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listOrganizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	orgs, total, err := h.organizationService.ListOrganizations(c.Request.Context(), c.Query("name"), params.Limit, params.Offset())
	if err != nil {
		respondError(c, logger, err, "failed to list organizations")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessPaged(dto.ToOrganizationListResponse(orgs), dto.NewPagination(total, params.Page, params.Limit)))
}

// getOrganization godoc
// @Summary Get an organization by ID
// @Description Retrieves the organization enriched with its sponsor transfer total
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.OrganizationResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	org, err := h.organizationService.GetOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to retrieve organization")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToOrganizationResponse(org)))
}

// updateOrganization godoc
// @Summary Update an organization
// @Description Applies a partial update to the organization. Requires edit rights.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param organization body dto.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.OrganizationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *organizationHandler) updateOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	org, err := h.organizationService.UpdateOrganization(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "failed to update organization")
		return
	}

	enriched, err := h.organizationService.GetOrganization(c.Request.Context(), org.OrganizationID)
	if err != nil {
		respondError(c, logger, err, "failed to load updated organization")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToOrganizationResponse(enriched)))
}

// deleteOrganization godoc
// @Summary Delete an organization
// @Description Removes the organization and all of its employees, operations, transfers and saudization records in one transaction. Requires delete rights.
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *organizationHandler) deleteOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.organizationService.DeleteOrganization(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "failed to delete organization")
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}

// getOrganizationTotals godoc
// @Summary Get an organization's financial totals
// @Description Rolls requested amounts, revenues and expenses up over every employee of the organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.SuccessResponse{data=domain.OrganizationTotals}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/employees/totals [get]
func (h *organizationHandler) getOrganizationTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.totalsService.OrganizationTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to compute organization totals")
		return
	}
	c.JSON(http.StatusOK, dto.Success(totals))
}

// countEmployees godoc
// @Summary Count an organization's employees
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/employees/count [get]
func (h *organizationHandler) countEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	count, err := h.organizationService.CountEmployees(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to count employees")
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"count": count}))
}

// listDailyOperations godoc
// @Summary List an organization's daily operations
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.DailyOperationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/daily-operations [get]
func (h *organizationHandler) listDailyOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	ops, total, err := h.dailyOpService.ListDailyOperationsByOrganization(c.Request.Context(), c.Param("id"), params.Limit, params.Offset())
	if err != nil {
		respondError(c, logger, err, "failed to list daily operations")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessPaged(dto.ToDailyOperationListResponse(ops), dto.NewPagination(total, params.Page, params.Limit)))
}

// countDailyOperations godoc
// @Summary Count an organization's daily operations
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/daily-operations/count [get]
func (h *organizationHandler) countDailyOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	count, err := h.organizationService.CountDailyOperations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to count daily operations")
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"count": count}))
}

// getDailyOperationTotals godoc
// @Summary Sum an organization's daily operations
// @Description Returns the revenue, expense and net totals over the organization's daily operations
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.SuccessResponse{data=domain.FinancialSummary}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/daily-operations/totals [get]
func (h *organizationHandler) getDailyOperationTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.organizationService.DailyOperationTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to sum daily operations")
		return
	}
	c.JSON(http.StatusOK, dto.Success(summary))
}

// createTransfer godoc
// @Summary Record a sponsor transfer
// @Description Records a transfer of funds from the office to the organization's sponsor
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.SuccessResponse{data=dto.TransferResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/transfers [post]
func (h *organizationHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), c.Param("id"), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "failed to record transfer")
		return
	}
	c.JSON(http.StatusCreated, dto.Success(dto.ToTransferResponse(transfer)))
}

// listTransfers godoc
// @Summary List an organization's sponsor transfers
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.TransferResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/transfers [get]
func (h *organizationHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	transfers, total, err := h.transferService.ListTransfersByOrganization(c.Request.Context(), c.Param("id"), params.Limit, params.Offset())
	if err != nil {
		respondError(c, logger, err, "failed to list transfers")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessPaged(dto.ToTransferListResponse(transfers), dto.NewPagination(total, params.Page, params.Limit)))
}

// createSaudization godoc
// @Summary Create a saudization record
// @Description Adds a saudization compliance record under the organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param record body dto.CreateSaudizationRequest true "Saudization details"
// @Success 201 {object} dto.SuccessResponse{data=dto.SaudizationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/saudizations [post]
func (h *organizationHandler) createSaudization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaudizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	record, err := h.saudizationService.CreateSaudization(c.Request.Context(), c.Param("id"), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "failed to create saudization record")
		return
	}
	c.JSON(http.StatusCreated, dto.Success(dto.ToSaudizationResponse(record)))
}

// listSaudizations godoc
// @Summary List an organization's saudization records
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.SaudizationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/saudizations [get]
func (h *organizationHandler) listSaudizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	records, total, err := h.saudizationService.ListSaudizationsByOrganization(c.Request.Context(), c.Param("id"), params.Limit, params.Offset())
	if err != nil {
		respondError(c, logger, err, "failed to list saudization records")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessPaged(dto.ToSaudizationListResponse(records), dto.NewPagination(total, params.Page, params.Limit)))
}
