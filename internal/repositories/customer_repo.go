package repositories

import "salonspa/internal/models"

// CustomerRepository defines the interface for customer profile data access.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	GetByID(id string) (*models.Customer, error)
	// GetByUserID finds the customer profile linked to a login identity.
	GetByUserID(userID string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id string) error
}
