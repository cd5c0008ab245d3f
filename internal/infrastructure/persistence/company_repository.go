package persistence

import (
	"context"
	"errors"

	"github.com/billing/backend/internal/domain/billing"
	"github.com/billing/backend/internal/domain/shared"
	"github.com/billing/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindAll returns all companies ordered by name
func (r *GormCompanyRepository) FindAll(ctx context.Context) ([]billing.Company, error) {
	var companyModels []models.CompanyModel
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&companyModels).Error; err != nil {
		return nil, err
	}

	companies := make([]billing.Company, len(companyModels))
	for i, model := range companyModels {
		companies[i] = *model.ToDomain()
	}
	return companies, nil
}

// FindByCode finds a company by its code
func (r *GormCompanyRepository) FindByCode(ctx context.Context, code string) (*billing.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByCode checks whether a company with the given code exists
func (r *GormCompanyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a new company
func (r *GormCompanyRepository) Create(ctx context.Context, company *billing.Company) error {
	model := models.CompanyModelFromDomain(company)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update persists changes to an existing company
func (r *GormCompanyRepository) Update(ctx context.Context, company *billing.Company) error {
	result := r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Where("code = ?", company.Code).
		Updates(map[string]any{
			"name":        company.Name,
			"description": company.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a company by its code
func (r *GormCompanyRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
