package services

import (
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The totals aggregator comes first since the employee service and the
	// organization endpoints lean on it.
	container.Totals = NewTotalsService(repos.ReportingRepo, repos.EmployeeRepo)

	container.Organization = NewOrganizationService(
		repos.OrganizationRepo,
		repos.EmployeeRepo,
		repos.DailyOperationRepo,
		repos.ReportingRepo,
	)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.OrganizationRepo, container.Totals)
	container.DailyOperation = NewDailyOperationService(repos.DailyOperationRepo, repos.EmployeeRepo)
	container.OfficeOperation = NewOfficeOperationService(repos.OfficeOperationRepo)
	container.Transfer = NewTransferService(repos.TransferRepo, repos.OrganizationRepo)
	container.Saudization = NewSaudizationService(repos.SaudizationRepo, repos.OrganizationRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Dashboard = NewDashboardService(repos)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
