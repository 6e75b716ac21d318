package services_test

import (
	"testing"

	"salonspa/internal/models"
	"salonspa/internal/repositories"
	"salonspa/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSupplierRepository is a mock implementation of repositories.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) GetAll() ([]models.Supplier, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Create(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Update(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEmployeeRepository is a mock implementation of repositories.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) GetAll() ([]models.Employee, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Create(employee *models.Employee) error {
	args := m.Called(employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(employee *models.Employee) error {
	args := m.Called(employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func newCatalogFixture() (*services.CatalogService, *repositories.MockServiceRepository, *repositories.MockProductRepository, *MockEmployeeRepository, *MockSupplierRepository) {
	serviceRepo := repositories.NewMockServiceRepository()
	productRepo := repositories.NewMockProductRepository()
	employeeRepo := new(MockEmployeeRepository)
	supplierRepo := new(MockSupplierRepository)
	catalogService := services.NewCatalogService(serviceRepo, productRepo, employeeRepo, supplierRepo)
	return catalogService, serviceRepo, productRepo, employeeRepo, supplierRepo
}

func TestCatalogService_CreateProduct_ChecksSupplier(t *testing.T) {
	catalogService, _, productRepo, _, supplierRepo := newCatalogFixture()

	product := &models.Product{
		Name:       "Argan Oil 100ml",
		Price:      decimal.RequireFromString("12.50"),
		Stock:      40,
		Category:   models.ProductCategoryCosmetic,
		SupplierID: "sup-1",
	}

	supplierRepo.On("GetByID", "sup-1").Return(&models.Supplier{ID: "sup-1"}, nil).Once()
	assert.NoError(t, catalogService.CreateProduct(product))
	assert.NotEmpty(t, product.ID)

	stored, err := productRepo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Argan Oil 100ml", stored.Name)

	// A product pointing at an unknown supplier is rejected before it is stored.
	orphan := &models.Product{Name: "Mystery Cream", SupplierID: "sup-missing"}
	supplierRepo.On("GetByID", "sup-missing").Return(nil, models.ErrNotFound).Once()
	err = catalogService.CreateProduct(orphan)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, orphan.ID)
	supplierRepo.AssertExpectations(t)
}

func TestCatalogService_CreateEmployee_ChecksService(t *testing.T) {
	catalogService, serviceRepo, _, employeeRepo, _ := newCatalogFixture()

	_ = serviceRepo.Create(&models.Service{ID: "svc-1", Name: "Relaxing Massage", Price: decimal.NewFromInt(45)})

	employee := &models.Employee{
		Name:      "Carla",
		Surname:   "Diaz",
		Specialty: "massage",
		ServiceID: "svc-1",
	}
	employeeRepo.On("Create", employee).Return(nil).Once()
	assert.NoError(t, catalogService.CreateEmployee(employee))

	// An employee assigned to an unknown service is rejected.
	stray := &models.Employee{Name: "Luis", Surname: "Mora", ServiceID: "svc-missing"}
	err := catalogService.CreateEmployee(stray)
	assert.ErrorIs(t, err, models.ErrNotFound)
	employeeRepo.AssertExpectations(t)
}

func TestCatalogService_ServiceCRUD(t *testing.T) {
	catalogService, _, _, _, _ := newCatalogFixture()

	service := &models.Service{
		Name:        "Deep Cleansing Facial",
		Price:       decimal.RequireFromString("30.00"),
		DurationMin: 45,
		Category:    "facial",
	}
	assert.NoError(t, catalogService.CreateService(service))
	assert.NotEmpty(t, service.ID)

	service.Price = decimal.RequireFromString("35.00")
	assert.NoError(t, catalogService.UpdateService(service))

	stored, err := catalogService.GetServiceByID(service.ID)
	assert.NoError(t, err)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("35.00")))

	all, err := catalogService.GetAllServices()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	assert.NoError(t, catalogService.DeleteService(service.ID))
	_, err = catalogService.GetServiceByID(service.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
