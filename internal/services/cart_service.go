package services

import (
	"errors"
	"fmt"

	"salonspa/internal/models"
	"salonspa/internal/repositories"

	"github.com/shopspring/decimal"
)

// CartTotals summarizes a cart against live catalog prices.
type CartTotals struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartService handles business logic for shopping carts. Cart lines carry no
// prices; every total is recomputed from the current catalog on each call.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	serviceRepo repositories.ServiceRepository
}

// NewCartService creates a new CartService.
func NewCartService(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	serviceRepo repositories.ServiceRepository,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
	}
}

// GetOrCreateActiveCart returns the user's active cart, creating one lazily
// on first use.
func (s *CartService) GetOrCreateActiveCart(userID string) (*models.Cart, error) {
	return s.cartRepo.GetOrCreateActive(userID)
}

// AddItem adds qty of a product or service to the user's active cart. An
// existing line for the same entity has its quantity incremented.
func (s *CartService) AddItem(userID string, kind models.ItemKind, entityID string, qty int) (*models.Cart, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("item kind %q: %w", kind, models.ErrValidation)
	}
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d: %w", qty, models.ErrValidation)
	}
	// The referenced entity must exist; its price is looked up again later,
	// never stored on the line.
	if _, err := s.unitPrice(kind, entityID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreateActive(userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.AddItem(cart.ID, kind, entityID, qty); err != nil {
		return nil, err
	}
	return s.cartRepo.GetActive(userID)
}

// RemoveItem removes a line from the user's active cart. Removing an absent
// line (or having no active cart at all) is a no-op.
func (s *CartService) RemoveItem(userID, itemID string) error {
	cart, err := s.cartRepo.GetActive(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.cartRepo.RemoveItem(cart.ID, itemID)
}

// UpdateQuantity replaces a line's quantity. A quantity below 1 removes the
// line instead.
func (s *CartService) UpdateQuantity(userID, itemID string, qty int) error {
	if qty < 1 {
		return s.RemoveItem(userID, itemID)
	}
	cart, err := s.cartRepo.GetActive(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.UpdateItemQuantity(cart.ID, itemID, qty)
}

// Totals computes the item count and subtotal of the user's active cart from
// current catalog prices. A user without an active cart has empty totals.
func (s *CartService) Totals(userID string) (*CartTotals, error) {
	cart, err := s.cartRepo.GetActive(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &CartTotals{Subtotal: decimal.Zero}, nil
		}
		return nil, err
	}
	return s.TotalsFor(cart)
}

// TotalsFor computes totals for an already-loaded cart.
func (s *CartService) TotalsFor(cart *models.Cart) (*CartTotals, error) {
	totals := &CartTotals{Subtotal: decimal.Zero}
	for _, item := range cart.Items {
		price, err := s.unitPrice(item.Kind, item.EntityID)
		if err != nil {
			return nil, err
		}
		totals.ItemCount += item.Quantity
		totals.Subtotal = totals.Subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return totals, nil
}

// unitPrice looks up the current catalog price of the referenced entity.
func (s *CartService) unitPrice(kind models.ItemKind, entityID string) (decimal.Decimal, error) {
	switch kind {
	case models.ItemKindProduct:
		product, err := s.productRepo.GetByID(entityID)
		if err != nil {
			return decimal.Zero, err
		}
		return product.Price, nil
	case models.ItemKindService:
		service, err := s.serviceRepo.GetByID(entityID)
		if err != nil {
			return decimal.Zero, err
		}
		return service.Price, nil
	default:
		return decimal.Zero, fmt.Errorf("item kind %q: %w", kind, models.ErrValidation)
	}
}
