package handler

import (
	"context"

	"github.com/billing/backend/internal/domain/billing"
	"github.com/billing/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubCompanyRepository is a function-backed CompanyRepository for handler tests
type stubCompanyRepository struct {
	findAll      func(ctx context.Context) ([]billing.Company, error)
	findByCode   func(ctx context.Context, code string) (*billing.Company, error)
	existsByCode func(ctx context.Context, code string) (bool, error)
	create       func(ctx context.Context, company *billing.Company) error
	update       func(ctx context.Context, company *billing.Company) error
	delete       func(ctx context.Context, code string) error
}

func (s *stubCompanyRepository) FindAll(ctx context.Context) ([]billing.Company, error) {
	return s.findAll(ctx)
}

func (s *stubCompanyRepository) FindByCode(ctx context.Context, code string) (*billing.Company, error) {
	return s.findByCode(ctx, code)
}

func (s *stubCompanyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return s.existsByCode(ctx, code)
}

func (s *stubCompanyRepository) Create(ctx context.Context, company *billing.Company) error {
	return s.create(ctx, company)
}

func (s *stubCompanyRepository) Update(ctx context.Context, company *billing.Company) error {
	return s.update(ctx, company)
}

func (s *stubCompanyRepository) Delete(ctx context.Context, code string) error {
	return s.delete(ctx, code)
}

// stubInvoiceRepository is a function-backed InvoiceRepository for handler tests
type stubInvoiceRepository struct {
	findAll             func(ctx context.Context) ([]billing.Invoice, error)
	findByID            func(ctx context.Context, id int64) (*billing.Invoice, error)
	findByIDWithCompany func(ctx context.Context, id int64) (*billing.Invoice, *billing.Company, error)
	findIDsByCompany    func(ctx context.Context, compCode string) ([]int64, error)
	countByCompany      func(ctx context.Context, compCode string) (int64, error)
	create              func(ctx context.Context, invoice *billing.Invoice) error
	updateLocked        func(ctx context.Context, id int64, apply func(*billing.Invoice) error) (*billing.Invoice, error)
	delete              func(ctx context.Context, id int64) error
}

func (s *stubInvoiceRepository) FindAll(ctx context.Context) ([]billing.Invoice, error) {
	return s.findAll(ctx)
}

func (s *stubInvoiceRepository) FindByID(ctx context.Context, id int64) (*billing.Invoice, error) {
	return s.findByID(ctx, id)
}

func (s *stubInvoiceRepository) FindByIDWithCompany(ctx context.Context, id int64) (*billing.Invoice, *billing.Company, error) {
	return s.findByIDWithCompany(ctx, id)
}

func (s *stubInvoiceRepository) FindIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	return s.findIDsByCompany(ctx, compCode)
}

func (s *stubInvoiceRepository) CountByCompany(ctx context.Context, compCode string) (int64, error) {
	return s.countByCompany(ctx, compCode)
}

func (s *stubInvoiceRepository) Create(ctx context.Context, invoice *billing.Invoice) error {
	return s.create(ctx, invoice)
}

func (s *stubInvoiceRepository) UpdateLocked(ctx context.Context, id int64, apply func(*billing.Invoice) error) (*billing.Invoice, error) {
	return s.updateLocked(ctx, id, apply)
}

func (s *stubInvoiceRepository) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

var (
	_ billing.CompanyRepository = (*stubCompanyRepository)(nil)
	_ billing.InvoiceRepository = (*stubInvoiceRepository)(nil)
)

// notFoundCompanyRepo returns a repository where every lookup misses
func notFoundCompanyRepo() *stubCompanyRepository {
	return &stubCompanyRepository{
		findByCode: func(ctx context.Context, code string) (*billing.Company, error) {
			return nil, shared.ErrNotFound
		},
		existsByCode: func(ctx context.Context, code string) (bool, error) {
			return false, nil
		},
	}
}
