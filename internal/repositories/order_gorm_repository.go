package repositories

import (
	"errors"
	"fmt"

	"salonspa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// GetAll retrieves all orders with their items.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

// GetByUser retrieves a user's orders with items, oldest first.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// CreateFromCart runs the whole checkout write set in one transaction:
// conditional stock decrements, order + item inserts, cart deactivation.
// Any failure rolls everything back.
func (r *GORMOrderRepository) CreateFromCart(order *models.Order, cartID string) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if item.Kind != models.ItemKindProduct {
				continue // services have no stock constraint
			}
			if err := decrementStock(tx, item.EntityID, item.Quantity); err != nil {
				return err
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		// Conditional on active so two racing checkouts of the same cart
		// cannot both convert it: the loser matches zero rows and rolls back.
		res := tx.Model(&models.Cart{}).
			Where("id = ? AND active = ?", cartID, true).
			Update("active", false)
		if res.Error != nil {
			return fmt.Errorf("failed to deactivate cart %s: %w", cartID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("active cart %s: %w", cartID, models.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status of order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s for status update: %w", id, models.ErrNotFound)
	}
	return nil
}

// CancelWithRestock cancels the order and returns product stock in one
// transaction. The status flip is conditional on the order still being
// cancellable, so two racing cancel requests cannot both restock: the loser's
// UPDATE matches zero rows and the transaction fails with ErrInvalidTransition.
func (r *GORMOrderRepository) CancelWithRestock(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status IN ?", id, []models.OrderStatus{
				models.OrderStatusPending,
				models.OrderStatusConfirmed,
				models.OrderStatusPreparing,
			}).
			Update("status", models.OrderStatusCancelled)
		if res.Error != nil {
			return fmt.Errorf("failed to cancel order %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			var order models.Order
			if err := tx.Select("status").First(&order, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("order %s: %w", id, models.ErrNotFound)
				}
				return fmt.Errorf("failed to load order %s: %w", id, err)
			}
			return fmt.Errorf("order %s in status %s: %w", id, order.Status, models.ErrInvalidTransition)
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", id).Find(&items).Error; err != nil {
			return fmt.Errorf("failed to load items of order %s: %w", id, err)
		}
		for _, item := range items {
			if item.Kind != models.ItemKindProduct {
				continue
			}
			if err := incrementStock(tx, item.EntityID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete hard-deletes the order and its items.
func (r *GORMOrderRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items of order %s: %w", id, err)
		}
		res := tx.Unscoped().Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete order %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order %s for deletion: %w", id, models.ErrNotFound)
		}
		return nil
	})
}
