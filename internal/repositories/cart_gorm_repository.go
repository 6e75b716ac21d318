package repositories

import (
	"errors"
	"fmt"

	"salonspa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetOrCreateActive returns the user's active cart, creating one if none
// exists. The lookup and create run in one transaction with the user's cart
// rows locked, so two concurrent requests cannot both create a cart.
func (r *GORMCartRepository) GetOrCreateActive(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND active = ?", userID, true).
			First(&cart).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		cart = models.Cart{
			ID:     uuid.New().String(),
			UserID: userID,
			Active: true,
		}
		return tx.Create(&cart).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart for user %s: %w", userID, err)
	}
	return r.loadWithItems(cart.ID)
}

// GetActive returns the user's active cart with its items.
func (r *GORMCartRepository) GetActive(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").
		Where("user_id = ? AND active = ?", userID, true).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("active cart for user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// AddItem upserts a cart line: an existing (kind, entity) line has its
// quantity incremented, otherwise a new line is created.
func (r *GORMCartRepository) AddItem(cartID string, kind models.ItemKind, entityID string, qty int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cart_id = ? AND kind = ? AND entity_id = ?", cartID, kind, entityID).
			First(&item).Error
		if err == nil {
			return tx.Model(&item).UpdateColumn("quantity", gorm.Expr("quantity + ?", qty)).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		item = models.CartItem{
			ID:       uuid.New().String(),
			CartID:   cartID,
			Kind:     kind,
			EntityID: entityID,
			Quantity: qty,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return fmt.Errorf("failed to add item to cart %s: %w", cartID, err)
	}
	return nil
}

// UpdateItemQuantity replaces the quantity of an existing cart line.
func (r *GORMCartRepository) UpdateItemQuantity(cartID, itemID string, qty int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", qty)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, models.ErrNotFound)
	}
	return nil
}

// RemoveItem deletes a cart line. Deleting an already-removed line succeeds.
func (r *GORMCartRepository) RemoveItem(cartID, itemID string) error {
	err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove cart item %s: %w", itemID, err)
	}
	return nil
}

// Deactivate marks the cart inactive. A cart that is already inactive (or
// missing) is reported as not found, so a cart can only be converted once.
func (r *GORMCartRepository) Deactivate(cartID string) error {
	res := r.db.Model(&models.Cart{}).
		Where("id = ? AND active = ?", cartID, true).
		Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to deactivate cart %s: %w", cartID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("active cart %s: %w", cartID, models.ErrNotFound)
	}
	return nil
}

func (r *GORMCartRepository) loadWithItems(cartID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, "id = ?", cartID).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}
	return &cart, nil
}
