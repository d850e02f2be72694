package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees and vacancies.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvc
}

func newEmployeeHandler(es portssvc.EmployeeSvc) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvc) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", middleware.RequireEditRights(), h.updateEmployee)
		employees.DELETE("/:id", middleware.RequireDeleteRights(), h.deleteEmployee)
	}

	rg.GET("/organizations/:id/employees", h.listOrganizationEmployees)
}

// createEmployee godoc
// @Summary Create an employee or vacancy
// @Description Adds an employee record under an organization. Employee-type records require nationality, phone and residence permit details; vacancies are placeholders and skip that rule.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.SuccessResponse{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "failed to create employee")
		return
	}

	enriched, err := h.employeeService.GetEmployee(c.Request.Context(), employee.EmployeeID)
	if err != nil {
		respondError(c, logger, err, "failed to load created employee")
		return
	}
	c.JSON(http.StatusCreated, dto.Success(dto.ToEmployeeResponse(enriched)))
}

// listEmployees godoc
// @Summary List employees
// @Description Returns one page of employees, each row carrying its computed revenue, expense and remaining totals. Search matches on name or residence permit number.
// @Tags employees
// @Produce json
// @Param search query string false "Name or permit number filter"
// @Param organization query string false "Organization ID filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.EmployeeResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Non-numeric page/limit floor to the defaults instead of failing the request.
	params := dto.ListEmployeesParams{
		ListParams:   bindListParams(c),
		Search:       c.Query("search"),
		Organization: c.Query("organization"),
	}

	employees, total, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessPaged(dto.ToEmployeeListResponse(employees), dto.NewPagination(total, params.Page, params.Limit)))
}

// listOrganizationEmployees godoc
// @Summary List one organization's employees
// @Description Returns one page of the organization's employees, each row carrying its computed totals. An organization with no employees yields an empty page, not an error.
// @Tags employees
// @Produce json
// @Param id path string true "Organization ID"
// @Param search query string false "Name or permit number filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.EmployeeResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/employees [get]
func (h *employeeHandler) listOrganizationEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListEmployeesParams{
		ListParams:   bindListParams(c),
		Search:       c.Query("search"),
		Organization: c.Param("id"),
	}

	employees, total, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "failed to list organization employees")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessPaged(dto.ToEmployeeListResponse(employees), dto.NewPagination(total, params.Page, params.Limit)))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Description Retrieves the employee enriched with its computed totals
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.EmployeeResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToEmployeeResponse(employee)))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies a partial update to the employee. Requires edit rights.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body: "+err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "failed to update employee")
		return
	}

	enriched, err := h.employeeService.GetEmployee(c.Request.Context(), employee.EmployeeID)
	if err != nil {
		respondError(c, logger, err, "failed to load updated employee")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.ToEmployeeResponse(enriched)))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes the employee and its daily operations in one transaction. Requires delete rights.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "failed to delete employee")
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}
