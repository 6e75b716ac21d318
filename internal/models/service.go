package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service is a salon treatment offered to customers (massage, facial, ...).
type Service struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	DurationMin int             `json:"duration_min" validate:"required,gt=0"` // duration in minutes
	Category    string          `json:"category" validate:"required,max=100"`

	// Products consumed while performing the service.
	Products []Product `json:"products,omitempty" gorm:"many2many:service_products"`
	// Staff assigned to perform the service.
	Employees  []Employee `json:"employees,omitempty" gorm:"foreignKey:ServiceID"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
