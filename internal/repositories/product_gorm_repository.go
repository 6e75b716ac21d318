package repositories

import (
	"errors"
	"fmt"

	"salonspa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetAll retrieves all products with their supplier preloaded.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Supplier").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Supplier").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s for update: %w", product.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s for deletion: %w", id, models.ErrNotFound)
	}
	return nil
}

// DecrementStock subtracts qty using a conditional update so that two
// concurrent buyers cannot both take the last unit.
func (r *GORMProductRepository) DecrementStock(id string, qty int) error {
	return decrementStock(r.db, id, qty)
}

// IncrementStock adds qty back to the product's stock.
func (r *GORMProductRepository) IncrementStock(id string, qty int) error {
	return incrementStock(r.db, id, qty)
}

// decrementStock runs the conditional stock update on db, which may be a
// transaction handle. RowsAffected == 0 means the product is missing or the
// remaining stock is below qty; either way the order must not go through.
func decrementStock(db *gorm.DB, id string, qty int) error {
	res := db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s (requested %d): %w", id, qty, models.ErrInsufficientStock)
	}
	return nil
}

func incrementStock(db *gorm.DB, id string, qty int) error {
	res := db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to increment stock for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s for restock: %w", id, models.ErrNotFound)
	}
	return nil
}
