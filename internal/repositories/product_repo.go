package repositories

import "salonspa/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically subtracts qty from the product's stock,
	// failing with models.ErrInsufficientStock when stock < qty.
	DecrementStock(id string, qty int) error
	// IncrementStock adds qty back, used when an order is cancelled.
	IncrementStock(id string, qty int) error
}
