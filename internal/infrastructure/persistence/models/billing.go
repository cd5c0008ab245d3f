package models

import (
	"time"

	"github.com/billing/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// CompanyModel is the GORM model for companies
type CompanyModel struct {
	Code        string `gorm:"column:code;type:varchar(100);primaryKey"`
	Name        string `gorm:"column:name;type:text;not null;unique"`
	Description string `gorm:"column:description;type:text"`
}

// TableName returns the table name for CompanyModel
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the model to a domain entity
func (m *CompanyModel) ToDomain() *billing.Company {
	return &billing.Company{
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
	}
}

// CompanyModelFromDomain converts a domain entity to a model
func CompanyModelFromDomain(c *billing.Company) *CompanyModel {
	return &CompanyModel{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// InvoiceModel is the GORM model for invoices
type InvoiceModel struct {
	ID       int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CompCode string          `gorm:"column:comp_code;type:varchar(100);not null;index"`
	Amt      decimal.Decimal `gorm:"column:amt;type:numeric(20,2);not null"`
	Paid     bool            `gorm:"column:paid;not null"`
	AddDate  time.Time       `gorm:"column:add_date;not null"`
	PaidDate *time.Time      `gorm:"column:paid_date"`

	Company *CompanyModel `gorm:"foreignKey:CompCode;references:Code"`
}

// TableName returns the table name for InvoiceModel
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain entity
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		ID:       m.ID,
		CompCode: m.CompCode,
		Amount:   m.Amt,
		Paid:     m.Paid,
		AddDate:  m.AddDate,
		PaidDate: m.PaidDate,
	}
}

// InvoiceModelFromDomain converts a domain entity to a model
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:       i.ID,
		CompCode: i.CompCode,
		Amt:      i.Amount,
		Paid:     i.Paid,
		AddDate:  i.AddDate,
		PaidDate: i.PaidDate,
	}
}
