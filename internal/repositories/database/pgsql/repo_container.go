package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrganizationRepo:    newPgxOrganizationRepository(dbPool),
		EmployeeRepo:        newPgxEmployeeRepository(dbPool),
		DailyOperationRepo:  newPgxDailyOperationRepository(dbPool),
		OfficeOperationRepo: newPgxOfficeOperationRepository(dbPool),
		TransferRepo:        newPgxTransferRepository(dbPool),
		SaudizationRepo:     newPgxSaudizationRepository(dbPool),
		UserRepo:            newPgxUserRepository(dbPool),
		ReportingRepo:       newReportingRepository(dbPool),
	}
}
