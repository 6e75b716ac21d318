package repositories

import (
	"fmt"
	"sync"

	"salonspa/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]*models.Cart
	mu    sync.Mutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]*models.Cart),
	}
}

// GetOrCreateActive returns the user's active cart, creating one if none
// exists. The whole lookup-or-create happens under one lock, so concurrent
// calls for the same user never produce two active carts.
func (r *MockCartRepository) GetOrCreateActive(userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart := r.findActive(userID); cart != nil {
		return copyCart(cart), nil
	}
	cart := &models.Cart{
		ID:     uuid.New().String(),
		UserID: userID,
		Active: true,
	}
	r.carts[cart.ID] = cart
	return copyCart(cart), nil
}

// GetActive returns the user's active cart.
func (r *MockCartRepository) GetActive(userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart := r.findActive(userID); cart != nil {
		return copyCart(cart), nil
	}
	return nil, fmt.Errorf("active cart for user %s: %w", userID, models.ErrNotFound)
}

// AddItem upserts a cart line, incrementing the quantity of an existing
// (kind, entity) line.
func (r *MockCartRepository) AddItem(cartID string, kind models.ItemKind, entityID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[cartID]
	if !ok {
		return fmt.Errorf("cart %s: %w", cartID, models.ErrNotFound)
	}
	for i := range cart.Items {
		if cart.Items[i].Kind == kind && cart.Items[i].EntityID == entityID {
			cart.Items[i].Quantity += qty
			return nil
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		ID:       uuid.New().String(),
		CartID:   cartID,
		Kind:     kind,
		EntityID: entityID,
		Quantity: qty,
	})
	return nil
}

// UpdateItemQuantity replaces the quantity of an existing cart line.
func (r *MockCartRepository) UpdateItemQuantity(cartID, itemID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[cartID]
	if !ok {
		return fmt.Errorf("cart %s: %w", cartID, models.ErrNotFound)
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = qty
			return nil
		}
	}
	return fmt.Errorf("cart item %s: %w", itemID, models.ErrNotFound)
}

// RemoveItem deletes a cart line. Removing an absent line is a no-op.
func (r *MockCartRepository) RemoveItem(cartID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[cartID]
	if !ok {
		return fmt.Errorf("cart %s: %w", cartID, models.ErrNotFound)
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Deactivate marks the cart inactive. An already-inactive (or missing) cart
// is reported as not found, so a cart can only be converted once.
func (r *MockCartRepository) Deactivate(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[cartID]
	if !ok || !cart.Active {
		return fmt.Errorf("active cart %s: %w", cartID, models.ErrNotFound)
	}
	cart.Active = false
	return nil
}

// ActiveCartCount reports how many active carts the user has. Used by tests
// to verify the single-active-cart invariant.
func (r *MockCartRepository) ActiveCartCount(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, cart := range r.carts {
		if cart.UserID == userID && cart.Active {
			count++
		}
	}
	return count
}

func (r *MockCartRepository) findActive(userID string) *models.Cart {
	for _, cart := range r.carts {
		if cart.UserID == userID && cart.Active {
			return cart
		}
	}
	return nil
}

func copyCart(cart *models.Cart) *models.Cart {
	dup := *cart
	dup.Items = make([]models.CartItem, len(cart.Items))
	copy(dup.Items, cart.Items)
	return &dup
}
