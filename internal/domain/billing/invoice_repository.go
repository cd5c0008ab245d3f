package billing

import "context"

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindAll returns all invoices ordered by id ascending
	FindAll(ctx context.Context) ([]Invoice, error)

	// FindByID finds an invoice by its id
	FindByID(ctx context.Context, id int64) (*Invoice, error)

	// FindByIDWithCompany finds an invoice joined with its owning company
	FindByIDWithCompany(ctx context.Context, id int64) (*Invoice, *Company, error)

	// FindIDsByCompany returns the ids of all invoices owned by the given
	// company code, ordered by id ascending
	FindIDsByCompany(ctx context.Context, compCode string) ([]int64, error)

	// CountByCompany counts invoices owned by the given company code
	CountByCompany(ctx context.Context, compCode string) (int64, error)

	// Create inserts a new invoice and assigns its id
	Create(ctx context.Context, invoice *Invoice) error

	// UpdateLocked fetches the invoice under a row lock, applies the given
	// mutation, and persists amt/paid/paid_date, all inside one transaction.
	// The lock keeps concurrent payment transitions from reading stale state.
	UpdateLocked(ctx context.Context, id int64, apply func(*Invoice) error) (*Invoice, error)

	// Delete removes an invoice by id
	Delete(ctx context.Context, id int64) error
}
