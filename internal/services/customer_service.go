package services

import (
	"errors"

	"salonspa/internal/models"
	"salonspa/internal/repositories"

	"github.com/shopspring/decimal"
)

// CustomerStats aggregates a customer's purchase history. The figures are
// derived from orders on every call, never stored.
type CustomerStats struct {
	OrdersPlaced int             `json:"orders_placed"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	// Entities the customer actually bought, de-duplicated, in order of
	// first appearance across their orders. Reported separately from the
	// declared-interest relations on the profile.
	PurchasedServices []models.Service `json:"purchased_services"`
	PurchasedProducts []models.Product `json:"purchased_products"`
}

// CustomerService handles customer profiles and their derived statistics.
type CustomerService struct {
	customerRepo repositories.CustomerRepository
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	serviceRepo  repositories.ServiceRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(
	customerRepo repositories.CustomerRepository,
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	serviceRepo repositories.ServiceRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
	}
}

// GetAllCustomers retrieves all customer profiles.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

// GetCustomerByID retrieves a single customer profile.
func (s *CustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

// CreateCustomer creates a customer profile. Walk-in customers without login
// credentials are allowed; UserID stays nil for them.
func (s *CustomerService) CreateCustomer(customer *models.Customer) error {
	return s.customerRepo.Create(customer)
}

// UpdateCustomer updates an existing customer profile.
func (s *CustomerService) UpdateCustomer(customer *models.Customer) error {
	return s.customerRepo.Update(customer)
}

// DeleteCustomer deletes a customer profile.
func (s *CustomerService) DeleteCustomer(id string) error {
	return s.customerRepo.Delete(id)
}

// Stats computes the customer's derived purchase statistics. Customers
// without a linked login have no orders and therefore empty stats.
//
// TotalSpent sums every order regardless of status, cancelled included,
// matching how the admin panel has always reported it.
func (s *CustomerService) Stats(customerID string) (*CustomerStats, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	stats := &CustomerStats{
		TotalSpent:        decimal.Zero,
		PurchasedServices: []models.Service{},
		PurchasedProducts: []models.Product{},
	}
	if customer.UserID == nil {
		return stats, nil
	}

	orders, err := s.orderRepo.GetByUser(*customer.UserID)
	if err != nil {
		return nil, err
	}
	stats.OrdersPlaced = len(orders)

	seenServices := make(map[string]bool)
	seenProducts := make(map[string]bool)
	for _, order := range orders {
		stats.TotalSpent = stats.TotalSpent.Add(order.Total)
		for _, item := range order.Items {
			switch item.Kind {
			case models.ItemKindService:
				if seenServices[item.EntityID] {
					continue
				}
				seenServices[item.EntityID] = true
				service, err := s.serviceRepo.GetByID(item.EntityID)
				if err != nil {
					if errors.Is(err, models.ErrNotFound) {
						continue // entity removed from the catalog since
					}
					return nil, err
				}
				stats.PurchasedServices = append(stats.PurchasedServices, *service)
			case models.ItemKindProduct:
				if seenProducts[item.EntityID] {
					continue
				}
				seenProducts[item.EntityID] = true
				product, err := s.productRepo.GetByID(item.EntityID)
				if err != nil {
					if errors.Is(err, models.ErrNotFound) {
						continue
					}
					return nil, err
				}
				stats.PurchasedProducts = append(stats.PurchasedProducts, *product)
			}
		}
	}
	return stats, nil
}
