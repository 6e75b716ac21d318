package repositories

import "salonspa/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetOrCreateActive returns the user's active cart with items, creating
	// one atomically if none exists. At most one active cart per user.
	GetOrCreateActive(userID string) (*models.Cart, error)
	// GetActive returns the user's active cart with items, or ErrNotFound.
	GetActive(userID string) (*models.Cart, error)
	// AddItem adds qty of (kind, entityID) to the cart, incrementing the
	// quantity of an existing line instead of duplicating it.
	AddItem(cartID string, kind models.ItemKind, entityID string, qty int) error
	// UpdateItemQuantity replaces the quantity of a cart line.
	UpdateItemQuantity(cartID, itemID string, qty int) error
	// RemoveItem deletes a cart line. Removing an absent line is a no-op.
	RemoveItem(cartID, itemID string) error
	// Deactivate marks the cart inactive. The cart row is kept as an audit
	// trail; a later add-to-cart creates a fresh cart. A cart that is already
	// inactive fails with ErrNotFound, so each cart converts at most once.
	Deactivate(cartID string) error
}
