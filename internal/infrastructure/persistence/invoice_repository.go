package persistence

import (
	"context"
	"errors"

	"github.com/billing/backend/internal/domain/billing"
	"github.com/billing/backend/internal/domain/shared"
	"github.com/billing/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindAll returns all invoices ordered by id
func (r *GormInvoiceRepository) FindAll(ctx context.Context) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id int64) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDWithCompany finds an invoice along with its company
func (r *GormInvoiceRepository) FindByIDWithCompany(ctx context.Context, id int64) (*billing.Invoice, *billing.Company, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Company").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, shared.ErrNotFound
		}
		return nil, nil, err
	}
	if model.Company == nil {
		return nil, nil, shared.ErrNotFound
	}
	return model.ToDomain(), model.Company.ToDomain(), nil
}

// FindIDsByCompany returns the IDs of all invoices for a company, ordered by id
func (r *GormInvoiceRepository) FindIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("comp_code = ?", compCode).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CountByCompany returns the number of invoices for a company
func (r *GormInvoiceRepository) CountByCompany(ctx context.Context, compCode string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("comp_code = ?", compCode).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists a new invoice and backfills the generated ID
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	invoice.ID = model.ID
	invoice.AddDate = model.AddDate
	return nil
}

// UpdateLocked loads the invoice under a row lock, applies the given
// function, and persists the result within a single transaction.
func (r *GormInvoiceRepository) UpdateLocked(ctx context.Context, id int64, apply func(*billing.Invoice) error) (*billing.Invoice, error) {
	var updated *billing.Invoice

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.InvoiceModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		invoice := model.ToDomain()
		if err := apply(invoice); err != nil {
			return err
		}

		if err := tx.
			Model(&models.InvoiceModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"amt":       invoice.Amount,
				"paid":      invoice.Paid,
				"paid_date": invoice.PaidDate,
			}).Error; err != nil {
			return err
		}

		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an invoice by its ID
func (r *GormInvoiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
