package repositories

import (
	"fmt"
	"sync"

	"salonspa/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, models.ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s for update: %w", product.ID, models.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s for deletion: %w", id, models.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// DecrementStock checks and subtracts stock under one lock, mirroring the
// conditional UPDATE of the GORM implementation.
func (r *MockProductRepository) DecrementStock(id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, models.ErrNotFound)
	}
	if product.Stock < qty {
		return fmt.Errorf("product %s (requested %d, available %d): %w",
			id, qty, product.Stock, models.ErrInsufficientStock)
	}
	product.Stock -= qty
	r.products[id] = product
	return nil
}

// IncrementStock adds qty back to the product's stock.
func (r *MockProductRepository) IncrementStock(id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product %s for restock: %w", id, models.ErrNotFound)
	}
	product.Stock += qty
	r.products[id] = product
	return nil
}
