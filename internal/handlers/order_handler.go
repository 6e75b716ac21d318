package handlers

import (
	"log"

	"salonspa/internal/models"
	"salonspa/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the checkout and order routes with the Fiber app.
// staffOnly gates the status route to staff users.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, staffOnly fiber.Handler) {
	router.Post("/checkout", h.HandleCheckout)

	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
	orderRoutes.Patch("/:id/status", staffOnly, h.HandleUpdateOrderStatus)
}

// HandleCheckout converts the user's active cart into an order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	// Delivery info is optional; an empty body checks out with none.
	var info services.DeliveryInfo
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&info); err != nil {
			log.Printf("Error parsing checkout request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	order, err := h.service.Checkout(userID, info)
	if err != nil {
		log.Printf("Error during checkout for user %s: %v", userID, err)
		return errorResponse(c, "Checkout failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders lists the user's orders. Staff may request every order
// with ?all=true.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID, isStaff := currentUser(c)

	var (
		orders []models.Order
		err    error
	)
	if isStaff && c.QueryBool("all") {
		orders, err = h.service.ListAllOrders()
	} else {
		orders, err = h.service.ListUserOrders(userID)
	}
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return errorResponse(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order. Customers may only read their
// own orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	userID, isStaff := currentUser(c)
	orderID := c.Params("id")

	order, err := h.service.GetOrder(orderID, userID, isStaff)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderID, err)
		return errorResponse(c, "Could not retrieve order", err)
	}
	return c.JSON(order)
}

// HandleCancelOrder cancels an order and restores product stock.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	userID, isStaff := currentUser(c)
	orderID := c.Params("id")

	if err := h.service.CancelOrder(orderID, userID, isStaff); err != nil {
		log.Printf("Error cancelling order %s: %v", orderID, err)
		return errorResponse(c, "Could not cancel order", err)
	}
	return c.JSON(fiber.Map{
		"message": "Order cancelled",
	})
}

// HandleDeleteOrder hard-deletes a cancelled order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	userID, isStaff := currentUser(c)
	orderID := c.Params("id")

	if err := h.service.DeleteOrder(orderID, userID, isStaff); err != nil {
		log.Printf("Error deleting order %s: %v", orderID, err)
		return errorResponse(c, "Could not delete order", err)
	}
	return c.JSON(fiber.Map{
		"message": "Order deleted",
	})
}

// HandleUpdateOrderStatus moves an order along its lifecycle (staff only).
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status models.OrderStatus `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	if err := h.service.UpdateStatus(orderID, updateData.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return errorResponse(c, "Could not update order status", err)
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated",
		"status":  updateData.Status,
	})
}
