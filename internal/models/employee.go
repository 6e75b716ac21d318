package models

import "gorm.io/gorm"

// Employee is a staff member assigned to exactly one service.
type Employee struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string `json:"name" validate:"required,max=100"`
	Surname   string `json:"surname" validate:"required,max=100"`
	Specialty string `json:"specialty" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=15"`
	Role      string `json:"role" validate:"required,max=100"`

	ServiceID string   `json:"service_id" gorm:"index;type:varchar(36)" validate:"required"`
	Service   *Service `json:"service,omitempty"`
	gorm.Model
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.Name + " " + e.Surname
}
