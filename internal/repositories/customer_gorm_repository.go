package repositories

import (
	"errors"
	"fmt"

	"salonspa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{db: db}
}

// GetAll retrieves all customers with their declared-interest relations.
func (r *GORMCustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Preload("InterestServices").Preload("InterestProducts").
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by their ID.
func (r *GORMCustomerRepository) GetByID(id string) (*models.Customer, error) {
	return r.firstCustomer("id = ?", id)
}

// GetByUserID retrieves the customer linked to the given user identity.
func (r *GORMCustomerRepository) GetByUserID(userID string) (*models.Customer, error) {
	return r.firstCustomer("user_id = ?", userID)
}

// Create creates a new customer profile.
func (r *GORMCustomerRepository) Create(customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update updates an existing customer profile.
func (r *GORMCustomerRepository) Update(customer *models.Customer) error {
	res := r.db.Save(customer)
	if res.Error != nil {
		return fmt.Errorf("failed to update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer %s for update: %w", customer.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a customer profile by its ID.
func (r *GORMCustomerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer %s for deletion: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *GORMCustomerRepository) firstCustomer(query string, arg string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("InterestServices").Preload("InterestProducts").
		First(&customer, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %s: %w", arg, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer %s: %w", arg, err)
	}
	return &customer, nil
}
