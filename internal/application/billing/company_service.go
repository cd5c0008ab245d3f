package billing

import (
	"context"

	"github.com/billing/backend/internal/domain/billing"
	"github.com/billing/backend/internal/domain/shared"
)

// CompanyService handles company directory operations
type CompanyService struct {
	companyRepo billing.CompanyRepository
	invoiceRepo billing.InvoiceRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo billing.CompanyRepository, invoiceRepo billing.InvoiceRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
	}
}

// List returns all companies ordered by name
func (s *CompanyService) List(ctx context.Context) ([]CompanySummary, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]CompanySummary, len(companies))
	for i, c := range companies {
		summaries[i] = CompanySummary{Code: c.Code, Name: c.Name}
	}
	return summaries, nil
}

// Get retrieves a company by code together with the ids of its invoices
func (s *CompanyService) Get(ctx context.Context, code string) (*CompanyDetailResponse, error) {
	company, err := s.companyRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	invoiceIDs, err := s.invoiceRepo.FindIDsByCompany(ctx, company.Code)
	if err != nil {
		return nil, err
	}
	if invoiceIDs == nil {
		invoiceIDs = []int64{}
	}

	return &CompanyDetailResponse{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Invoices:    invoiceIDs,
	}, nil
}

// Create creates a new company, deriving its code from the name
func (s *CompanyService) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	company, err := billing.NewCompany(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	exists, err := s.companyRepo.ExistsByCode(ctx, company.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company with this code already exists")
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Update overwrites a company's name and description
func (s *CompanyService) Update(ctx context.Context, code string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := company.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Delete removes a company. Companies that still own invoices cannot be
// deleted; the ledger keeps its history.
func (s *CompanyService) Delete(ctx context.Context, code string) error {
	if _, err := s.companyRepo.FindByCode(ctx, code); err != nil {
		return err
	}

	count, err := s.invoiceRepo.CountByCompany(ctx, code)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CONFLICT", "Company still has invoices and cannot be deleted")
	}

	return s.companyRepo.Delete(ctx, code)
}
