package services

import (
	"fmt"

	"salonspa/internal/models"
	"salonspa/internal/repositories"
)

// CatalogService handles business logic for the salon catalog: services,
// products, employees and suppliers.
type CatalogService struct {
	serviceRepo  repositories.ServiceRepository
	productRepo  repositories.ProductRepository
	employeeRepo repositories.EmployeeRepository
	supplierRepo repositories.SupplierRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	serviceRepo repositories.ServiceRepository,
	productRepo repositories.ProductRepository,
	employeeRepo repositories.EmployeeRepository,
	supplierRepo repositories.SupplierRepository,
) *CatalogService {
	return &CatalogService{
		serviceRepo:  serviceRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		supplierRepo: supplierRepo,
	}
}

// --- Services ---

// GetAllServices retrieves all salon services.
func (s *CatalogService) GetAllServices() ([]models.Service, error) {
	return s.serviceRepo.GetAll()
}

// GetServiceByID retrieves a single salon service.
func (s *CatalogService) GetServiceByID(id string) (*models.Service, error) {
	return s.serviceRepo.GetByID(id)
}

// CreateService creates a new salon service.
func (s *CatalogService) CreateService(service *models.Service) error {
	return s.serviceRepo.Create(service)
}

// UpdateService updates an existing salon service.
func (s *CatalogService) UpdateService(service *models.Service) error {
	return s.serviceRepo.Update(service)
}

// DeleteService deletes a salon service by its ID.
func (s *CatalogService) DeleteService(id string) error {
	return s.serviceRepo.Delete(id)
}

// --- Products ---

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct creates a new product. The owning supplier must exist.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if _, err := s.supplierRepo.GetByID(product.SupplierID); err != nil {
		return fmt.Errorf("supplier for product: %w", err)
	}
	return s.productRepo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	if _, err := s.supplierRepo.GetByID(product.SupplierID); err != nil {
		return fmt.Errorf("supplier for product: %w", err)
	}
	return s.productRepo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}

// --- Employees ---

// GetAllEmployees retrieves all employees.
func (s *CatalogService) GetAllEmployees() ([]models.Employee, error) {
	return s.employeeRepo.GetAll()
}

// GetEmployeeByID retrieves a single employee.
func (s *CatalogService) GetEmployeeByID(id string) (*models.Employee, error) {
	return s.employeeRepo.GetByID(id)
}

// CreateEmployee creates a new employee. The assigned service must exist.
func (s *CatalogService) CreateEmployee(employee *models.Employee) error {
	if _, err := s.serviceRepo.GetByID(employee.ServiceID); err != nil {
		return fmt.Errorf("service for employee: %w", err)
	}
	return s.employeeRepo.Create(employee)
}

// UpdateEmployee updates an existing employee.
func (s *CatalogService) UpdateEmployee(employee *models.Employee) error {
	if _, err := s.serviceRepo.GetByID(employee.ServiceID); err != nil {
		return fmt.Errorf("service for employee: %w", err)
	}
	return s.employeeRepo.Update(employee)
}

// DeleteEmployee deletes an employee by their ID.
func (s *CatalogService) DeleteEmployee(id string) error {
	return s.employeeRepo.Delete(id)
}

// --- Suppliers ---

// GetAllSuppliers retrieves all suppliers.
func (s *CatalogService) GetAllSuppliers() ([]models.Supplier, error) {
	return s.supplierRepo.GetAll()
}

// GetSupplierByID retrieves a single supplier.
func (s *CatalogService) GetSupplierByID(id string) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(id)
}

// CreateSupplier creates a new supplier.
func (s *CatalogService) CreateSupplier(supplier *models.Supplier) error {
	return s.supplierRepo.Create(supplier)
}

// UpdateSupplier updates an existing supplier.
func (s *CatalogService) UpdateSupplier(supplier *models.Supplier) error {
	return s.supplierRepo.Update(supplier)
}

// DeleteSupplier deletes a supplier by its ID.
func (s *CatalogService) DeleteSupplier(id string) error {
	return s.supplierRepo.Delete(id)
}
