package billing

import (
	"context"
	"time"

	"github.com/billing/backend/internal/domain/billing"
	"github.com/billing/backend/internal/domain/shared"
)

// InvoiceService handles invoice ledger operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	companyRepo billing.CompanyRepository
	now         func() time.Time
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, companyRepo billing.CompanyRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

// List returns all invoices ordered by id
func (s *InvoiceService) List(ctx context.Context) ([]InvoiceSummary, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]InvoiceSummary, len(invoices))
	for i, inv := range invoices {
		summaries[i] = InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode}
	}
	return summaries, nil
}

// Get retrieves an invoice by id joined with its owning company
func (s *InvoiceService) Get(ctx context.Context, id int64) (*InvoiceDetailResponse, error) {
	invoice, company, err := s.invoiceRepo.FindByIDWithCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceDetailResponse(invoice, company)
	return &response, nil
}

// Create creates a new unpaid invoice for an existing company
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	exists, err := s.companyRepo.ExistsByCode(ctx, req.CompCode)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("INVALID_COMP_CODE", "Company code does not reference an existing company")
	}

	invoice, err := billing.NewInvoice(req.CompCode, req.Amt)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Update sets the invoice amount and payment state. The paid_date
// transition runs inside the repository's row lock, so the read of the
// previous state and the write cannot interleave with a concurrent update.
func (s *InvoiceService) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.UpdateLocked(ctx, id, func(inv *billing.Invoice) error {
		if err := inv.SetAmount(req.Amt); err != nil {
			return err
		}
		inv.ApplyPayment(*req.Paid, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an invoice by id
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	return s.invoiceRepo.Delete(ctx, id)
}
