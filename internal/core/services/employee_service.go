package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// employeeService implements EmployeeSvc. Every read path returns rows
// enriched with the four computed totals, batch-computed per page.
type employeeService struct {
	BaseService
	employeeRepo     portsrepo.EmployeeRepository
	organizationRepo portsrepo.OrganizationRepository
	totals           portssvc.TotalsSvc
}

var _ portssvc.EmployeeSvc = (*employeeService)(nil)

// NewEmployeeService creates a new employee service.
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepository,
	organizationRepo portsrepo.OrganizationRepository,
	totals portssvc.TotalsSvc,
) portssvc.EmployeeSvc {
	return &employeeService{
		employeeRepo:     employeeRepo,
		organizationRepo: organizationRepo,
		totals:           totals,
	}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	if req.RequestedAmount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("requestedAmount must not be negative")
	}
	if req.Type == domain.EmployeeTypeEmployee {
		if err := validateEmployeeDetails(req); err != nil {
			return nil, err
		}
	}

	org, err := s.organizationRepo.FindOrganizationByID(ctx, req.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find organization", "organization_id", req.OrganizationID)
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	if org == nil {
		return nil, apperrors.NewNotFoundError("organization not found")
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:            uuid.NewString(),
		OrganizationID:        req.OrganizationID,
		Type:                  req.Type,
		Name:                  req.Name,
		Nationality:           req.Nationality,
		Phone:                 req.Phone,
		ResidencePermitNumber: req.ResidencePermitNumber,
		ResidencePermitExpiry: req.ResidencePermitExpiry,
		WorkCardIssueDate:     req.WorkCardIssueDate,
		HasArrived:            req.HasArrived,
		IsSold:                req.IsSold,
		RequestedAmount:       req.RequestedAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee")
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created", "employee_id", employee.EmployeeID, "type", string(employee.Type))
	return &employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.EmployeeWithTotals, error) {
	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	totals, err := s.totals.TotalsForEmployees(ctx, []domain.Employee{*employee})
	if err != nil {
		return nil, err
	}

	return &domain.EmployeeWithTotals{
		Employee: *employee,
		Totals:   totals[employee.EmployeeID],
	}, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error) {
	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Nationality != nil {
		employee.Nationality = req.Nationality
	}
	if req.Phone != nil {
		employee.Phone = req.Phone
	}
	if req.ResidencePermitNumber != nil {
		employee.ResidencePermitNumber = req.ResidencePermitNumber
	}
	if req.ResidencePermitExpiry != nil {
		employee.ResidencePermitExpiry = req.ResidencePermitExpiry
	}
	if req.WorkCardIssueDate != nil {
		employee.WorkCardIssueDate = req.WorkCardIssueDate
	}
	if req.HasArrived != nil {
		employee.HasArrived = *req.HasArrived
	}
	if req.IsSold != nil {
		employee.IsSold = *req.IsSold
	}
	if req.RequestedAmount != nil {
		if req.RequestedAmount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("requestedAmount must not be negative")
		}
		employee.RequestedAmount = *req.RequestedAmount
	}
	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = updaterUserID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", "employee_id", employeeID)
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.LogInfo(ctx, "Employee updated", "employee_id", employeeID)
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := uuid.Validate(employeeID); err != nil {
		return apperrors.NewBadRequestError("invalid employee ID format")
	}

	if err := s.employeeRepo.DeleteEmployeeCascade(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", "employee_id", employeeID)
		return err
	}

	s.LogInfo(ctx, "Employee deleted with operations", "employee_id", employeeID)
	return nil
}

func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.EmployeeWithTotals, int64, error) {
	filter := portsrepo.EmployeeListFilter{
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset(),
	}
	if params.Organization != "" {
		if err := uuid.Validate(params.Organization); err != nil {
			return nil, 0, apperrors.NewBadRequestError("invalid organization ID format")
		}
		filter.OrganizationID = &params.Organization
	}

	employees, total, err := s.employeeRepo.ListEmployees(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	totals, err := s.totals.TotalsForEmployees(ctx, employees)
	if err != nil {
		return nil, 0, err
	}

	enriched := make([]domain.EmployeeWithTotals, len(employees))
	for i := range employees {
		enriched[i] = domain.EmployeeWithTotals{
			Employee: employees[i],
			Totals:   totals[employees[i].EmployeeID],
		}
	}
	return enriched, total, nil
}

// findEmployee validates the id format and loads the employee, translating
// absence into a not-found error.
func (s *employeeService) findEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if err := uuid.Validate(employeeID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid employee ID format")
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find employee", "employee_id", employeeID)
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee == nil {
		return nil, apperrors.NewNotFoundError("employee not found")
	}
	return employee, nil
}

// validateEmployeeDetails enforces the conditional rule that type=employee
// records carry real contact, permit and work-card details. Vacancies skip
// this. A missing permit expiry would also drop the record out of the
// dashboard's expired/expiring permit counts.
func validateEmployeeDetails(req dto.CreateEmployeeRequest) error {
	if req.Nationality == nil || *req.Nationality == "" {
		return apperrors.NewValidationFailedError("nationality is required for employee records")
	}
	if req.Phone == nil || *req.Phone == "" {
		return apperrors.NewValidationFailedError("phone is required for employee records")
	}
	if req.ResidencePermitNumber == nil || *req.ResidencePermitNumber == "" {
		return apperrors.NewValidationFailedError("residencePermitNumber is required for employee records")
	}
	if req.ResidencePermitExpiry == nil {
		return apperrors.NewValidationFailedError("residencePermitExpiry is required for employee records")
	}
	if req.WorkCardIssueDate == nil {
		return apperrors.NewValidationFailedError("workCardIssueDate is required for employee records")
	}
	return nil
}
