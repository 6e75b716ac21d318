package repositories

import "salonspa/internal/models"

// ServiceRepository defines the interface for salon service data access.
type ServiceRepository interface {
	GetAll() ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	Delete(id string) error
}

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	GetAll() ([]models.Employee, error)
	GetByID(id string) (*models.Employee, error)
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	Delete(id string) error
}

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	GetAll() ([]models.Supplier, error)
	GetByID(id string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(id string) error
}
