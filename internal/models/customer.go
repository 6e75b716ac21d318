package models

import "gorm.io/gorm"

// Customer is a salon customer profile. A customer may exist without login
// credentials; UserID links the profile to a User when they register online.
type Customer struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      *string `json:"user_id,omitempty" gorm:"uniqueIndex;type:varchar(36)"`
	User        *User   `json:"user,omitempty"`
	Name        string  `json:"name" validate:"required,max=100"`
	Surname     string  `json:"surname" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,max=15"`
	Allergies   string  `json:"allergies" validate:"omitempty"`
	Preferences string  `json:"preferences" validate:"omitempty"`

	// Declared interest, independent of purchase history. What the customer
	// actually bought is derived from their orders.
	InterestServices []Service `json:"interest_services,omitempty" gorm:"many2many:customer_interest_services"`
	InterestProducts []Product `json:"interest_products,omitempty" gorm:"many2many:customer_interest_products"`
	gorm.Model                 // CreatedAt doubles as the registration date
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.Name + " " + c.Surname
}
