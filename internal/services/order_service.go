package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"salonspa/internal/models"
	"salonspa/internal/repositories"
	"salonspa/pkg/rabbitmq"

	"github.com/shopspring/decimal"
)

// DeliveryInfo carries the optional delivery details captured at checkout.
type DeliveryInfo struct {
	Address string `json:"delivery_address"`
	Phone   string `json:"contact_phone"`
	Notes   string `json:"notes"`
}

// OrderService is the checkout engine: it converts active carts into
// immutable orders and manages the order status lifecycle.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	serviceRepo repositories.ServiceRepository
	mqClient    *rabbitmq.Client // RabbitMQ client, may be nil
	taxRate     decimal.Decimal
}

// NewOrderService creates a new OrderService. taxRate is the fixed VAT rate
// applied to every order subtotal, e.g. 0.16.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	serviceRepo repositories.ServiceRepository,
	taxRate decimal.Decimal,
	mqClient *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		mqClient:    mqClient,
		taxRate:     taxRate,
	}
}

// Checkout converts the user's active cart into an order. Unit prices are
// snapshotted onto the order lines, tax is applied to the subtotal with
// bankers rounding to 2 places, product stock is decremented and the cart is
// deactivated; the persistence step is a single all-or-nothing transaction.
func (s *OrderService) Checkout(userID string, info DeliveryInfo) (*models.Order, error) {
	cart, err := s.cartRepo.GetActive(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("user %s has no active cart: %w", userID, models.ErrEmptyCart)
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart %s: %w", cart.ID, models.ErrEmptyCart)
	}

	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		price, err := s.snapshotPrice(line)
		if err != nil {
			return nil, err
		}
		item := models.OrderItem{
			Kind:      line.Kind,
			EntityID:  line.EntityID,
			Quantity:  line.Quantity,
			UnitPrice: price,
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.Subtotal())
	}

	tax := subtotal.Mul(s.taxRate).RoundBank(2)
	order := &models.Order{
		UserID:          userID,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal.Add(tax),
		Status:          models.OrderStatusPending,
		DeliveryAddress: info.Address,
		ContactPhone:    info.Phone,
		Notes:           info.Notes,
		Items:           items,
	}

	// The repository checks stock again with a conditional decrement inside
	// the transaction; that check, not the price lookup above, is what
	// decides a stock race.
	if err := s.orderRepo.CreateFromCart(order, cart.ID); err != nil {
		return nil, err
	}

	s.publishEvent("order.created", order)
	return order, nil
}

// snapshotPrice fetches the current unit price for a cart line and, for
// product lines, rejects quantities the current stock cannot cover.
func (s *OrderService) snapshotPrice(line models.CartItem) (decimal.Decimal, error) {
	switch line.Kind {
	case models.ItemKindProduct:
		product, err := s.productRepo.GetByID(line.EntityID)
		if err != nil {
			return decimal.Zero, err
		}
		if product.Stock < line.Quantity {
			return decimal.Zero, fmt.Errorf("product %s (requested %d, available %d): %w",
				product.Name, line.Quantity, product.Stock, models.ErrInsufficientStock)
		}
		return product.Price, nil
	case models.ItemKindService:
		service, err := s.serviceRepo.GetByID(line.EntityID)
		if err != nil {
			return decimal.Zero, err
		}
		return service.Price, nil
	default:
		return decimal.Zero, fmt.Errorf("item kind %q: %w", line.Kind, models.ErrValidation)
	}
}

// GetOrder retrieves a single order. Non-staff actors may only read their
// own orders.
func (s *OrderService) GetOrder(orderID, actorID string, isStaff bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !isStaff && order.UserID != actorID {
		return nil, fmt.Errorf("order %s belongs to another user: %w", orderID, models.ErrPermissionDenied)
	}
	return order, nil
}

// ListUserOrders retrieves all of a user's orders, oldest first.
func (s *OrderService) ListUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// ListAllOrders retrieves every order. Callers must gate this to staff.
func (s *OrderService) ListAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateStatus moves an order along its lifecycle. Moving to cancelled also
// restores product stock.
func (s *OrderService) UpdateStatus(orderID string, next models.OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("order status %q: %w", next, models.ErrValidation)
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("order %s cannot go from %s to %s: %w",
			orderID, order.Status, next, models.ErrInvalidTransition)
	}

	if next == models.OrderStatusCancelled {
		if err := s.orderRepo.CancelWithRestock(orderID); err != nil {
			return err
		}
		s.publishEvent("order.cancelled", order)
		return nil
	}
	if err := s.orderRepo.UpdateStatus(orderID, next); err != nil {
		return err
	}
	order.Status = next
	s.publishEvent("order.status_changed", order)
	return nil
}

// CancelOrder cancels an order on behalf of its owner or staff, restoring
// product stock. Terminal orders cannot be cancelled.
func (s *OrderService) CancelOrder(orderID, actorID string, isStaff bool) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if !isStaff && order.UserID != actorID {
		return fmt.Errorf("order %s belongs to another user: %w", orderID, models.ErrPermissionDenied)
	}
	if !order.Status.CanTransitionTo(models.OrderStatusCancelled) {
		return fmt.Errorf("order %s in status %s: %w", orderID, order.Status, models.ErrInvalidTransition)
	}
	if err := s.orderRepo.CancelWithRestock(orderID); err != nil {
		return err
	}
	s.publishEvent("order.cancelled", order)
	return nil
}

// DeleteOrder hard-deletes an order and its items. Only cancelled orders may
// be deleted, and only by their owner or staff.
func (s *OrderService) DeleteOrder(orderID, actorID string, isStaff bool) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if !isStaff && order.UserID != actorID {
		return fmt.Errorf("order %s belongs to another user: %w", orderID, models.ErrPermissionDenied)
	}
	if order.Status != models.OrderStatusCancelled {
		return fmt.Errorf("only cancelled orders may be deleted, order %s is %s: %w",
			orderID, order.Status, models.ErrInvalidTransition)
	}
	return s.orderRepo.Delete(orderID)
}

// publishEvent publishes an order lifecycle event. Publishing is best-effort:
// a broker failure is logged and never fails the request.
func (s *OrderService) publishEvent(routingKey string, order *models.Order) {
	if s.mqClient == nil {
		return
	}
	message := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.Total,
	}
	body, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal %s event for order %s: %v", routingKey, order.ID, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", routingKey, order.ID, err)
		return
	}
	log.Printf("Published %s event for order %s", routingKey, order.ID)
}
