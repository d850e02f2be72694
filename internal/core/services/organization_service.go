package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// organizationService implements OrganizationSvc. Reads are enriched with the
// sponsor transfer total in a single grouped query per call.
type organizationService struct {
	BaseService
	organizationRepo   portsrepo.OrganizationRepository
	employeeRepo       portsrepo.EmployeeRepository
	dailyOperationRepo portsrepo.DailyOperationRepository
	reportingRepo      portsrepo.ReportingRepository
}

var _ portssvc.OrganizationSvc = (*organizationService)(nil)

// maxSponsorAmount caps the sponsorship amount an organization can carry.
var maxSponsorAmount = decimal.NewFromInt(10_000_000)

func validateSponsorAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.NewValidationFailedError("sponsorAmount must not be negative")
	}
	if amount.GreaterThan(maxSponsorAmount) {
		return apperrors.NewValidationFailedError("sponsorAmount must not exceed 10000000")
	}
	return nil
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(
	organizationRepo portsrepo.OrganizationRepository,
	employeeRepo portsrepo.EmployeeRepository,
	dailyOperationRepo portsrepo.DailyOperationRepository,
	reportingRepo portsrepo.ReportingRepository,
) portssvc.OrganizationSvc {
	return &organizationService{
		organizationRepo:   organizationRepo,
		employeeRepo:       employeeRepo,
		dailyOperationRepo: dailyOperationRepo,
		reportingRepo:      reportingRepo,
	}
}

func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error) {
	if err := validateSponsorAmount(req.SponsorAmount); err != nil {
		return nil, err
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID:         uuid.NewString(),
		OwnerName:              req.OwnerName,
		OwnerNationalID:        req.OwnerNationalID,
		OwnerCode:              req.OwnerCode,
		OwnerBirthDate:         req.OwnerBirthDate,
		SubscriptionStart:      req.SubscriptionStart,
		SubscriptionEnd:        req.SubscriptionEnd,
		CommercialRecordNumber: req.CommercialRecordNumber,
		CommercialRecordExpiry: req.CommercialRecordExpiry,
		SponsorAmount:          req.SponsorAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.organizationRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization")
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	s.LogInfo(ctx, "Organization created", "organization_id", org.OrganizationID)
	return &org, nil
}

func (s *organizationService) GetOrganization(ctx context.Context, organizationID string) (*domain.OrganizationWithTransfers, error) {
	org, err := s.findOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	transferred, err := s.reportingRepo.TransferredTotals(ctx, []string{organizationID})
	if err != nil {
		s.LogError(ctx, err, "Failed to sum sponsor transfers", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to sum sponsor transfers: %w", err)
	}

	return &domain.OrganizationWithTransfers{
		Organization:              *org,
		TransferredToSponsorTotal: transferred[organizationID],
	}, nil
}

func (s *organizationService) UpdateOrganization(ctx context.Context, organizationID string, req dto.UpdateOrganizationRequest, updaterUserID string) (*domain.Organization, error) {
	org, err := s.findOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if req.OwnerName != nil {
		org.OwnerName = *req.OwnerName
	}
	if req.OwnerNationalID != nil {
		org.OwnerNationalID = *req.OwnerNationalID
	}
	if req.OwnerCode != nil {
		org.OwnerCode = *req.OwnerCode
	}
	if req.OwnerBirthDate != nil {
		org.OwnerBirthDate = req.OwnerBirthDate
	}
	if req.SubscriptionStart != nil {
		org.SubscriptionStart = req.SubscriptionStart
	}
	if req.SubscriptionEnd != nil {
		org.SubscriptionEnd = req.SubscriptionEnd
	}
	if req.CommercialRecordNumber != nil {
		org.CommercialRecordNumber = *req.CommercialRecordNumber
	}
	if req.CommercialRecordExpiry != nil {
		org.CommercialRecordExpiry = req.CommercialRecordExpiry
	}
	if req.SponsorAmount != nil {
		if err := validateSponsorAmount(*req.SponsorAmount); err != nil {
			return nil, err
		}
		org.SponsorAmount = *req.SponsorAmount
	}
	org.LastUpdatedAt = time.Now()
	org.LastUpdatedBy = updaterUserID

	if err := s.organizationRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update organization", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	s.LogInfo(ctx, "Organization updated", "organization_id", organizationID)
	return org, nil
}

func (s *organizationService) DeleteOrganization(ctx context.Context, organizationID string) error {
	if err := uuid.Validate(organizationID); err != nil {
		return apperrors.NewBadRequestError("invalid organization ID format")
	}

	if err := s.organizationRepo.DeleteOrganizationCascade(ctx, organizationID); err != nil {
		s.LogError(ctx, err, "Failed to delete organization", "organization_id", organizationID)
		return err
	}

	s.LogInfo(ctx, "Organization deleted with children", "organization_id", organizationID)
	return nil
}

func (s *organizationService) ListOrganizations(ctx context.Context, name string, limit, offset int) ([]domain.OrganizationWithTransfers, int64, error) {
	orgs, total, err := s.organizationRepo.ListOrganizations(ctx, portsrepo.OrganizationListFilter{
		Name:   name,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations")
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	enriched := make([]domain.OrganizationWithTransfers, len(orgs))
	if len(orgs) == 0 {
		return enriched, total, nil
	}

	ids := make([]string, len(orgs))
	for i := range orgs {
		ids[i] = orgs[i].OrganizationID
	}
	transferred, err := s.reportingRepo.TransferredTotals(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum sponsor transfers for page")
		return nil, 0, fmt.Errorf("failed to sum sponsor transfers: %w", err)
	}

	for i := range orgs {
		enriched[i] = domain.OrganizationWithTransfers{
			Organization:              orgs[i],
			TransferredToSponsorTotal: transferred[orgs[i].OrganizationID],
		}
	}
	return enriched, total, nil
}

func (s *organizationService) CountEmployees(ctx context.Context, organizationID string) (int64, error) {
	if _, err := s.findOrganization(ctx, organizationID); err != nil {
		return 0, err
	}
	count, err := s.employeeRepo.CountEmployeesByOrganization(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count employees", "organization_id", organizationID)
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (s *organizationService) CountDailyOperations(ctx context.Context, organizationID string) (int64, error) {
	if _, err := s.findOrganization(ctx, organizationID); err != nil {
		return 0, err
	}
	count, err := s.dailyOperationRepo.CountDailyOperationsByOrganization(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count daily operations", "organization_id", organizationID)
		return 0, fmt.Errorf("failed to count daily operations: %w", err)
	}
	return count, nil
}

func (s *organizationService) DailyOperationTotals(ctx context.Context, organizationID string) (domain.FinancialSummary, error) {
	if _, err := s.findOrganization(ctx, organizationID); err != nil {
		return domain.FinancialSummary{}, err
	}
	summary, err := s.reportingRepo.DailyOperationSummary(ctx, domain.DateWindow{}, &organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize daily operations", "organization_id", organizationID)
		return domain.FinancialSummary{}, fmt.Errorf("failed to summarize daily operations: %w", err)
	}
	return summary, nil
}

// findOrganization validates the id format and loads the organization,
// translating absence into a not-found error.
func (s *organizationService) findOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	if err := uuid.Validate(organizationID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid organization ID format")
	}
	org, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find organization", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	if org == nil {
		return nil, apperrors.NewNotFoundError("organization not found")
	}
	return org, nil
}
