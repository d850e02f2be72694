package services_test

import (
	"context"
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrganizationRepository ---

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	var org *domain.Organization
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	return org, args.Error(1)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) ListOrganizations(ctx context.Context, filter portsrepo.OrganizationListFilter) ([]domain.Organization, int64, error) {
	args := m.Called(ctx, filter)
	var orgs []domain.Organization
	if args.Get(0) != nil {
		orgs = args.Get(0).([]domain.Organization)
	}
	return orgs, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrganizationRepository) CountOrganizations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrganizationRepository) DeleteOrganizationCascade(ctx context.Context, organizationID string) error {
	args := m.Called(ctx, organizationID)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, filter portsrepo.EmployeeListFilter) ([]domain.Employee, int64, error) {
	args := m.Called(ctx, filter)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeRepository) ListEmployeesByOrganization(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	args := m.Called(ctx, organizationID)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) CountEmployeesByOrganization(ctx context.Context, organizationID string) (int64, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountEmployeesByType(ctx context.Context, employeeType domain.EmployeeType) (int64, error) {
	args := m.Called(ctx, employeeType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountExpiredPermits(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountExpiringPermits(ctx context.Context, now, until time.Time) (int64, error) {
	args := m.Called(ctx, now, until)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) SumRequestedAmount(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployeeCascade(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// --- Mock DailyOperationRepository ---

type MockDailyOperationRepository struct {
	mock.Mock
}

func (m *MockDailyOperationRepository) SaveDailyOperation(ctx context.Context, op domain.DailyOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockDailyOperationRepository) FindDailyOperationByID(ctx context.Context, dailyOperationID string) (*domain.DailyOperation, error) {
	args := m.Called(ctx, dailyOperationID)
	var op *domain.DailyOperation
	if args.Get(0) != nil {
		op = args.Get(0).(*domain.DailyOperation)
	}
	return op, args.Error(1)
}

func (m *MockDailyOperationRepository) UpdateDailyOperation(ctx context.Context, op domain.DailyOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockDailyOperationRepository) DeleteDailyOperation(ctx context.Context, dailyOperationID string) error {
	args := m.Called(ctx, dailyOperationID)
	return args.Error(0)
}

func (m *MockDailyOperationRepository) ListDailyOperationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.DailyOperation, int64, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	var ops []domain.DailyOperation
	if args.Get(0) != nil {
		ops = args.Get(0).([]domain.DailyOperation)
	}
	return ops, args.Get(1).(int64), args.Error(2)
}

func (m *MockDailyOperationRepository) CountDailyOperations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDailyOperationRepository) CountDailyOperationsByOrganization(ctx context.Context, organizationID string) (int64, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock OfficeOperationRepository ---

type MockOfficeOperationRepository struct {
	mock.Mock
}

func (m *MockOfficeOperationRepository) SaveOfficeOperation(ctx context.Context, op domain.OfficeOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOfficeOperationRepository) FindOfficeOperationByID(ctx context.Context, officeOperationID string) (*domain.OfficeOperation, error) {
	args := m.Called(ctx, officeOperationID)
	var op *domain.OfficeOperation
	if args.Get(0) != nil {
		op = args.Get(0).(*domain.OfficeOperation)
	}
	return op, args.Error(1)
}

func (m *MockOfficeOperationRepository) UpdateOfficeOperation(ctx context.Context, op domain.OfficeOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOfficeOperationRepository) DeleteOfficeOperation(ctx context.Context, officeOperationID string) error {
	args := m.Called(ctx, officeOperationID)
	return args.Error(0)
}

func (m *MockOfficeOperationRepository) ListOfficeOperations(ctx context.Context, limit, offset int) ([]domain.OfficeOperation, int64, error) {
	args := m.Called(ctx, limit, offset)
	var ops []domain.OfficeOperation
	if args.Get(0) != nil {
		ops = args.Get(0).([]domain.OfficeOperation)
	}
	return ops, args.Get(1).(int64), args.Error(2)
}

func (m *MockOfficeOperationRepository) CountOfficeOperations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TransferRepository ---

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	args := m.Called(ctx, transferID)
	var transfer *domain.Transfer
	if args.Get(0) != nil {
		transfer = args.Get(0).(*domain.Transfer)
	}
	return transfer, args.Error(1)
}

func (m *MockTransferRepository) UpdateTransfer(ctx context.Context, transfer domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) DeleteTransfer(ctx context.Context, transferID string) error {
	args := m.Called(ctx, transferID)
	return args.Error(0)
}

func (m *MockTransferRepository) ListTransfersByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Transfer, int64, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	var transfers []domain.Transfer
	if args.Get(0) != nil {
		transfers = args.Get(0).([]domain.Transfer)
	}
	return transfers, args.Get(1).(int64), args.Error(2)
}

// --- Mock SaudizationRepository ---

type MockSaudizationRepository struct {
	mock.Mock
}

func (m *MockSaudizationRepository) SaveSaudization(ctx context.Context, record domain.Saudization) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSaudizationRepository) FindSaudizationByID(ctx context.Context, saudizationID string) (*domain.Saudization, error) {
	args := m.Called(ctx, saudizationID)
	var record *domain.Saudization
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.Saudization)
	}
	return record, args.Error(1)
}

func (m *MockSaudizationRepository) UpdateSaudization(ctx context.Context, record domain.Saudization) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSaudizationRepository) DeleteSaudization(ctx context.Context, saudizationID string) error {
	args := m.Called(ctx, saudizationID)
	return args.Error(0)
}

func (m *MockSaudizationRepository) ListSaudizationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Saudization, int64, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	var records []domain.Saudization
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.Saudization)
	}
	return records, args.Get(1).(int64), args.Error(2)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

func (m *MockUserRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) EmployeeOperationSums(ctx context.Context, employeeIDs []string) (map[string]domain.OperationSums, error) {
	args := m.Called(ctx, employeeIDs)
	var sums map[string]domain.OperationSums
	if args.Get(0) != nil {
		sums = args.Get(0).(map[string]domain.OperationSums)
	}
	return sums, args.Error(1)
}

func (m *MockReportingRepository) DailyOperationSummary(ctx context.Context, window domain.DateWindow, organizationID *string) (domain.FinancialSummary, error) {
	args := m.Called(ctx, window, organizationID)
	return args.Get(0).(domain.FinancialSummary), args.Error(1)
}

func (m *MockReportingRepository) OfficeOperationSummary(ctx context.Context, window domain.DateWindow) (domain.FinancialSummary, error) {
	args := m.Called(ctx, window)
	return args.Get(0).(domain.FinancialSummary), args.Error(1)
}

func (m *MockReportingRepository) TransferredTotals(ctx context.Context, organizationIDs []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, organizationIDs)
	var totals map[string]decimal.Decimal
	if args.Get(0) != nil {
		totals = args.Get(0).(map[string]decimal.Decimal)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) EmployeeOperationsSummary(ctx context.Context) (domain.FinancialSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.FinancialSummary), args.Error(1)
}
