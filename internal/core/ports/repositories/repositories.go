package repositories

// RepositoryProvider bundles every repository implementation so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	OrganizationRepo    OrganizationRepository
	EmployeeRepo        EmployeeRepository
	DailyOperationRepo  DailyOperationRepository
	OfficeOperationRepo OfficeOperationRepository
	TransferRepo        TransferRepository
	SaudizationRepo     SaudizationRepository
	UserRepo            UserRepository
	ReportingRepo       ReportingRepository
}
