package billing

import (
	"time"

	"github.com/billing/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Company DTOs
// =============================================================================

// CreateCompanyRequest represents a request to create a new company
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required"`
}

// UpdateCompanyRequest represents a request to update a company
type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required"`
}

// CompanySummary represents a company in list responses
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetailResponse represents a company together with the ids of the
// invoices it owns
type CompanyDetailResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Invoices    []int64 `json:"invoices"`
}

// ToCompanyResponse converts a domain company to a response DTO
func ToCompanyResponse(company *billing.Company) CompanyResponse {
	return CompanyResponse{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
	}
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to create a new invoice
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code" binding:"required"`
	Amt      decimal.Decimal `json:"amt" binding:"required"`
}

// UpdateInvoiceRequest represents a request to update an invoice
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt" binding:"required"`
	Paid *bool           `json:"paid" binding:"required"`
}

// InvoiceSummary represents an invoice in list responses
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceDetailResponse represents an invoice joined with its owning company
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(invoice *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       invoice.ID,
		CompCode: invoice.CompCode,
		Amt:      invoice.Amount,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
	}
}

// ToInvoiceDetailResponse converts a domain invoice and its company to a
// joined response DTO
func ToInvoiceDetailResponse(invoice *billing.Invoice, company *billing.Company) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       invoice.ID,
		Amt:      invoice.Amount,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
		Company:  ToCompanyResponse(company),
	}
}
