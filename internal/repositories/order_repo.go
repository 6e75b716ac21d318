package repositories

import "salonspa/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	// GetByUser returns the user's orders with items, oldest first.
	GetByUser(userID string) ([]models.Order, error)
	// CreateFromCart persists the order and its items, decrements product
	// stock for every product line and deactivates the source cart, all in
	// a single transaction. A stock shortfall on any line fails the whole
	// operation with models.ErrInsufficientStock and leaves no partial state.
	CreateFromCart(order *models.Order, cartID string) error
	UpdateStatus(id string, status models.OrderStatus) error
	// CancelWithRestock sets the order's status to cancelled and restores
	// product stock for its product lines in a single transaction. The status
	// change is guarded inside the transaction: an order that is no longer
	// cancellable fails with models.ErrInvalidTransition and nothing is
	// restocked, even when the caller's earlier read saw a live status.
	CancelWithRestock(id string) error
	// Delete hard-deletes the order and its items.
	Delete(id string) error
}
