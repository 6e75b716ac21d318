package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"salonspa/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It coordinates with the product and cart mocks so that CreateFromCart and
// CancelWithRestock behave like the single database transaction of the GORM
// implementation: checkouts serialize on one mutex and any stock shortfall
// rolls back the decrements already made.
type MockOrderRepository struct {
	orders   map[string]models.Order
	products *MockProductRepository
	carts    *MockCartRepository
	mu       sync.Mutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(products *MockProductRepository, carts *MockCartRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		products: products,
		carts:    carts,
	}
}

// GetAll returns all orders, oldest first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sortOrdersByCreation(orderList)
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	return &order, nil
}

// GetByUser returns the user's orders, oldest first.
func (r *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	sortOrdersByCreation(orderList)
	return orderList, nil
}

// CreateFromCart decrements stock for every product line, stores the order
// and deactivates the cart. A shortfall on any line undoes the decrements
// made so far and fails the whole call.
func (r *MockOrderRepository) CreateFromCart(order *models.Order, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var decremented []models.OrderItem
	for _, item := range order.Items {
		if item.Kind != models.ItemKindProduct {
			continue
		}
		if err := r.products.DecrementStock(item.EntityID, item.Quantity); err != nil {
			for _, done := range decremented {
				// Rollback before releasing the lock; ignore restock errors
				// for products that vanished mid-flight.
				_ = r.products.IncrementStock(done.EntityID, done.Quantity)
			}
			return err
		}
		decremented = append(decremented, item)
	}

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order

	if err := r.carts.Deactivate(cartID); err != nil {
		delete(r.orders, order.ID)
		for _, done := range decremented {
			_ = r.products.IncrementStock(done.EntityID, done.Quantity)
		}
		return err
	}
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s for status update: %w", id, models.ErrNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// CancelWithRestock cancels the order and returns product stock. The status
// is re-checked under the lock, so of two racing cancel requests only one
// restocks; the other fails with ErrInvalidTransition.
func (r *MockOrderRepository) CancelWithRestock(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	if !order.Status.CanTransitionTo(models.OrderStatusCancelled) {
		return fmt.Errorf("order %s in status %s: %w", id, order.Status, models.ErrInvalidTransition)
	}
	for _, item := range order.Items {
		if item.Kind != models.ItemKindProduct {
			continue
		}
		if err := r.products.IncrementStock(item.EntityID, item.Quantity); err != nil {
			return err
		}
	}
	order.Status = models.OrderStatusCancelled
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Delete removes an order and its items.
func (r *MockOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return fmt.Errorf("order %s for deletion: %w", id, models.ErrNotFound)
	}
	delete(r.orders, id)
	return nil
}

func sortOrdersByCreation(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}
