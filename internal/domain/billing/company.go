package billing

import (
	"strings"

	"github.com/billing/backend/internal/domain/shared"
	"github.com/gosimple/slug"
)

// Company represents a billed company in the billing context.
// It is the aggregate root for company-related operations.
// The code is derived from the name at creation time and never changes.
type Company struct {
	Code        string
	Name        string
	Description string
}

// NewCompany creates a new company, deriving its code by slugifying the name
func NewCompany(name, description string) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}

	code := SlugifyCode(name)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Company name must contain at least one letter or digit")
	}

	return &Company{
		Code:        code,
		Name:        name,
		Description: description,
	}, nil
}

// Update overwrites the company's display name and description.
// The code is immutable and stays bound to the original name.
func (c *Company) Update(name, description string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = name
	c.Description = description

	return nil
}

// SlugifyCode derives a company code from a display name.
// Lower-cased, hyphen-joined, diacritics transliterated.
func SlugifyCode(name string) string {
	return slug.Make(name)
}

func validateCompanyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
