package services

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// EmployeeSvc defines operations over employee and vacancy records. Every
// read path returns rows enriched with computed totals.
type EmployeeSvc interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (*domain.EmployeeWithTotals, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error)
	// DeleteEmployee removes the employee and its daily operations inside one
	// store transaction.
	DeleteEmployee(ctx context.Context, employeeID string) error
	// ListEmployees returns one enriched page plus the filtered total. The
	// totals are batch-computed over exactly the page's rows.
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.EmployeeWithTotals, int64, error)
}
