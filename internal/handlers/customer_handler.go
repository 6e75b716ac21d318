package handlers

import (
	"log"

	"salonspa/internal/models"
	"salonspa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customer profiles and their
// derived statistics. All routes are staff only.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router, staffOnly fiber.Handler) {
	customerRoutes := router.Group("/customers", staffOnly)
	customerRoutes.Get("/", h.HandleGetCustomers)
	customerRoutes.Get("/:id", h.HandleGetCustomerByID)
	customerRoutes.Get("/:id/stats", h.HandleGetCustomerStats)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Put("/:id", h.HandleUpdateCustomer)
	customerRoutes.Delete("/:id", h.HandleDeleteCustomer)
}

// HandleGetCustomers lists all customer profiles.
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		log.Printf("Error getting all customers: %v", err)
		return errorResponse(c, "Could not retrieve customers", err)
	}
	return c.JSON(customers)
}

// HandleGetCustomerByID retrieves a single customer profile.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	id := c.Params("id")
	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		log.Printf("Error getting customer %s: %v", id, err)
		return errorResponse(c, "Could not retrieve customer", err)
	}
	return c.JSON(customer)
}

// HandleGetCustomerStats returns the customer's derived purchase statistics:
// orders placed, total spent and the distinct services/products they have
// actually bought.
func (h *CustomerHandler) HandleGetCustomerStats(c *fiber.Ctx) error {
	id := c.Params("id")
	stats, err := h.service.Stats(id)
	if err != nil {
		log.Printf("Error computing stats for customer %s: %v", id, err)
		return errorResponse(c, "Could not compute customer statistics", err)
	}
	return c.JSON(stats)
}

// HandleCreateCustomer creates a customer profile. Walk-in customers need no
// linked user account.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(customer); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateCustomer(&customer); err != nil {
		log.Printf("Error creating customer: %v", err)
		return errorResponse(c, "Could not create customer", err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer updates a customer profile.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return invalidBody(c, err)
	}
	customer.ID = c.Params("id")
	if err := h.validate.Struct(customer); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateCustomer(&customer); err != nil {
		log.Printf("Error updating customer %s: %v", customer.ID, err)
		return errorResponse(c, "Could not update customer", err)
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer deletes a customer profile.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteCustomer(id); err != nil {
		log.Printf("Error deleting customer %s: %v", id, err)
		return errorResponse(c, "Could not delete customer", err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}
