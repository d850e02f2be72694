package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	Organization    OrganizationSvc
	Employee        EmployeeSvc
	DailyOperation  DailyOperationSvc
	OfficeOperation OfficeOperationSvc
	Transfer        TransferSvc
	Saudization     SaudizationSvc
	User            UserSvc
	Totals          TotalsSvc
	Dashboard       DashboardSvc
	Token           TokenSvc
	GoogleOAuth     GoogleOAuthSvc
}
