package billing

import "context"

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// FindAll returns all companies ordered by name ascending
	FindAll(ctx context.Context) ([]Company, error)

	// FindByCode finds a company by its code
	FindByCode(ctx context.Context, code string) (*Company, error)

	// ExistsByCode checks whether a company with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Create inserts a new company
	Create(ctx context.Context, company *Company) error

	// Update persists changes to an existing company
	Update(ctx context.Context, company *Company) error

	// Delete removes a company by code
	Delete(ctx context.Context, code string) error
}
