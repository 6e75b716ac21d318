package repositories

import (
	"errors"
	"fmt"

	"salonspa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMServiceRepository is a GORM implementation of ServiceRepository.
type GORMServiceRepository struct {
	db *gorm.DB
}

// NewGORMServiceRepository creates a new instance of GORMServiceRepository.
func NewGORMServiceRepository(db *gorm.DB) *GORMServiceRepository {
	return &GORMServiceRepository{db: db}
}

// GetAll retrieves all services with their products and staff preloaded.
func (r *GORMServiceRepository) GetAll() ([]models.Service, error) {
	var services []models.Service
	if err := r.db.Preload("Products").Preload("Employees").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get all services: %w", err)
	}
	return services, nil
}

// GetByID retrieves a single service by its ID.
func (r *GORMServiceRepository) GetByID(id string) (*models.Service, error) {
	var service models.Service
	if err := r.db.Preload("Products").Preload("Employees").First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service %s: %w", id, err)
	}
	return &service, nil
}

// Create creates a new service.
func (r *GORMServiceRepository) Create(service *models.Service) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	if err := r.db.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update updates an existing service.
func (r *GORMServiceRepository) Update(service *models.Service) error {
	res := r.db.Save(service)
	if res.Error != nil {
		return fmt.Errorf("failed to update service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("service %s for update: %w", service.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a service by its ID.
func (r *GORMServiceRepository) Delete(id string) error {
	res := r.db.Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("service %s for deletion: %w", id, models.ErrNotFound)
	}
	return nil
}

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	db *gorm.DB
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{db: db}
}

// GetAll retrieves all employees with their assigned service preloaded.
func (r *GORMEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Preload("Service").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}
	return employees, nil
}

// GetByID retrieves a single employee by their ID.
func (r *GORMEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Preload("Service").First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return &employee, nil
}

// Create creates a new employee.
func (r *GORMEmployeeRepository) Create(employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Update updates an existing employee.
func (r *GORMEmployeeRepository) Update(employee *models.Employee) error {
	res := r.db.Save(employee)
	if res.Error != nil {
		return fmt.Errorf("failed to update employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("employee %s for update: %w", employee.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes an employee by their ID.
func (r *GORMEmployeeRepository) Delete(id string) error {
	res := r.db.Delete(&models.Employee{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("employee %s for deletion: %w", id, models.ErrNotFound)
	}
	return nil
}

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{db: db}
}

// GetAll retrieves all suppliers.
func (r *GORMSupplierRepository) GetAll() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Preload("Products").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all suppliers: %w", err)
	}
	return suppliers, nil
}

// GetByID retrieves a single supplier by its ID.
func (r *GORMSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.Preload("Products").First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get supplier %s: %w", id, err)
	}
	return &supplier, nil
}

// Create creates a new supplier.
func (r *GORMSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update updates an existing supplier.
func (r *GORMSupplierRepository) Update(supplier *models.Supplier) error {
	res := r.db.Save(supplier)
	if res.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier %s for update: %w", supplier.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a supplier by its ID.
func (r *GORMSupplierRepository) Delete(id string) error {
	res := r.db.Delete(&models.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier %s for deletion: %w", id, models.ErrNotFound)
	}
	return nil
}
