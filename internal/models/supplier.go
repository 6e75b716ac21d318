package models

import "gorm.io/gorm"

// Supplier is a company that provides products to the salon.
type Supplier struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Contact     string `json:"contact" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,max=15"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address" validate:"required"`
	Specialty   string `json:"specialty" validate:"omitempty,max=100"`

	Products   []Product `json:"products,omitempty" gorm:"foreignKey:SupplierID"`
	gorm.Model           // CreatedAt doubles as the registration date
}
