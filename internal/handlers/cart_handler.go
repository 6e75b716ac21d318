package handlers

import (
	"log"

	"salonspa/internal/models"
	"salonspa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All cart
// routes require authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/:id", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

// HandleGetCart returns the user's active cart with live-priced totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	cart, err := h.cartService.GetOrCreateActiveCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return errorResponse(c, "Could not retrieve cart", err)
	}
	totals, err := h.cartService.TotalsFor(cart)
	if err != nil {
		log.Printf("Error computing totals for cart %s: %v", cart.ID, err)
		return errorResponse(c, "Could not compute cart totals", err)
	}
	return c.JSON(fiber.Map{
		"cart":   cart,
		"totals": totals,
	})
}

// AddItemRequest represents the request body for adding a cart item.
type AddItemRequest struct {
	Kind     models.ItemKind `json:"kind" validate:"required,oneof=product service"`
	EntityID string          `json:"entity_id" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gte=1"`
}

// HandleAddItem adds a product or service to the user's active cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	cart, err := h.cartService.AddItem(userID, req.Kind, req.EntityID, req.Quantity)
	if err != nil {
		log.Printf("Error adding item to cart for user %s: %v", userID, err)
		return errorResponse(c, "Could not add item to cart", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// UpdateItemRequest represents the request body for a quantity update.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateItem replaces a cart line's quantity. A quantity below 1
// removes the line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	itemID := c.Params("id")

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.cartService.UpdateQuantity(userID, itemID, req.Quantity); err != nil {
		log.Printf("Error updating cart item %s for user %s: %v", itemID, userID, err)
		return errorResponse(c, "Could not update cart item", err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart item updated",
	})
}

// HandleRemoveItem removes a cart line. Removing an absent line succeeds.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	itemID := c.Params("id")

	if err := h.cartService.RemoveItem(userID, itemID); err != nil {
		log.Printf("Error removing cart item %s for user %s: %v", itemID, userID, err)
		return errorResponse(c, "Could not remove cart item", err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart item removed",
	})
}
