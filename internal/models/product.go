package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product categories, mirroring the kinds of goods a salon stocks.
const (
	ProductCategoryCosmetic = "cosmetic"
	ProductCategoryEquip    = "equipment"
	ProductCategoryMaterial = "material"
	ProductCategoryTool     = "tool"
	ProductCategoryOther    = "other"
)

// Product represents a physical product in the store.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=3,max=200"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Category    string          `json:"category" validate:"required,oneof=cosmetic equipment material tool other"`

	SupplierID string    `json:"supplier_id" gorm:"index;type:varchar(36)" validate:"required"`
	Supplier   *Supplier `json:"supplier,omitempty"`
	// Services this product is used in.
	Services   []Service `json:"services,omitempty" gorm:"many2many:service_products"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
