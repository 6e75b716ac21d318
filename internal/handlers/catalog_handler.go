package handlers

import (
	"log"

	"salonspa/internal/models"
	"salonspa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the salon catalog: services,
// products, employees and suppliers. Reads are open to any authenticated
// user (the shop page); writes are staff only.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router, staffOnly fiber.Handler) {
	serviceRoutes := router.Group("/services")
	serviceRoutes.Get("/", h.HandleGetServices)
	serviceRoutes.Get("/:id", h.HandleGetServiceByID)
	serviceRoutes.Post("/", staffOnly, h.HandleCreateService)
	serviceRoutes.Put("/:id", staffOnly, h.HandleUpdateService)
	serviceRoutes.Delete("/:id", staffOnly, h.HandleDeleteService)

	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", staffOnly, h.HandleCreateProduct)
	productRoutes.Put("/:id", staffOnly, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", staffOnly, h.HandleDeleteProduct)

	employeeRoutes := router.Group("/employees", staffOnly)
	employeeRoutes.Get("/", h.HandleGetEmployees)
	employeeRoutes.Get("/:id", h.HandleGetEmployeeByID)
	employeeRoutes.Post("/", h.HandleCreateEmployee)
	employeeRoutes.Put("/:id", h.HandleUpdateEmployee)
	employeeRoutes.Delete("/:id", h.HandleDeleteEmployee)

	supplierRoutes := router.Group("/suppliers", staffOnly)
	supplierRoutes.Get("/", h.HandleGetSuppliers)
	supplierRoutes.Get("/:id", h.HandleGetSupplierByID)
	supplierRoutes.Post("/", h.HandleCreateSupplier)
	supplierRoutes.Put("/:id", h.HandleUpdateSupplier)
	supplierRoutes.Delete("/:id", h.HandleDeleteSupplier)
}

// --- Services ---

// HandleGetServices lists all salon services.
func (h *CatalogHandler) HandleGetServices(c *fiber.Ctx) error {
	servicesList, err := h.service.GetAllServices()
	if err != nil {
		log.Printf("Error getting all services: %v", err)
		return errorResponse(c, "Could not retrieve services", err)
	}
	return c.JSON(servicesList)
}

// HandleGetServiceByID retrieves a single salon service.
func (h *CatalogHandler) HandleGetServiceByID(c *fiber.Ctx) error {
	id := c.Params("id")
	service, err := h.service.GetServiceByID(id)
	if err != nil {
		log.Printf("Error getting service %s: %v", id, err)
		return errorResponse(c, "Could not retrieve service", err)
	}
	return c.JSON(service)
}

// HandleCreateService creates a salon service.
func (h *CatalogHandler) HandleCreateService(c *fiber.Ctx) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(service); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateService(&service); err != nil {
		log.Printf("Error creating service: %v", err)
		return errorResponse(c, "Could not create service", err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// HandleUpdateService updates a salon service.
func (h *CatalogHandler) HandleUpdateService(c *fiber.Ctx) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return invalidBody(c, err)
	}
	service.ID = c.Params("id")
	if err := h.validate.Struct(service); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateService(&service); err != nil {
		log.Printf("Error updating service %s: %v", service.ID, err)
		return errorResponse(c, "Could not update service", err)
	}
	return c.JSON(service)
}

// HandleDeleteService deletes a salon service.
func (h *CatalogHandler) HandleDeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteService(id); err != nil {
		log.Printf("Error deleting service %s: %v", id, err)
		return errorResponse(c, "Could not delete service", err)
	}
	return c.JSON(fiber.Map{"message": "Service deleted"})
}

// --- Products ---

// HandleGetProducts lists all products.
func (h *CatalogHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return errorResponse(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product.
func (h *CatalogHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProductByID(id)
	if err != nil {
		log.Printf("Error getting product %s: %v", id, err)
		return errorResponse(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates a product.
func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return invalidBody(c, err)
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return errorResponse(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return errorResponse(c, "Could not delete product", err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// --- Employees ---

// HandleGetEmployees lists all employees.
func (h *CatalogHandler) HandleGetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		log.Printf("Error getting all employees: %v", err)
		return errorResponse(c, "Could not retrieve employees", err)
	}
	return c.JSON(employees)
}

// HandleGetEmployeeByID retrieves a single employee.
func (h *CatalogHandler) HandleGetEmployeeByID(c *fiber.Ctx) error {
	id := c.Params("id")
	employee, err := h.service.GetEmployeeByID(id)
	if err != nil {
		log.Printf("Error getting employee %s: %v", id, err)
		return errorResponse(c, "Could not retrieve employee", err)
	}
	return c.JSON(employee)
}

// HandleCreateEmployee creates an employee.
func (h *CatalogHandler) HandleCreateEmployee(c *fiber.Ctx) error {
	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(employee); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateEmployee(&employee); err != nil {
		log.Printf("Error creating employee: %v", err)
		return errorResponse(c, "Could not create employee", err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// HandleUpdateEmployee updates an employee.
func (h *CatalogHandler) HandleUpdateEmployee(c *fiber.Ctx) error {
	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		return invalidBody(c, err)
	}
	employee.ID = c.Params("id")
	if err := h.validate.Struct(employee); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateEmployee(&employee); err != nil {
		log.Printf("Error updating employee %s: %v", employee.ID, err)
		return errorResponse(c, "Could not update employee", err)
	}
	return c.JSON(employee)
}

// HandleDeleteEmployee deletes an employee.
func (h *CatalogHandler) HandleDeleteEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteEmployee(id); err != nil {
		log.Printf("Error deleting employee %s: %v", id, err)
		return errorResponse(c, "Could not delete employee", err)
	}
	return c.JSON(fiber.Map{"message": "Employee deleted"})
}

// --- Suppliers ---

// HandleGetSuppliers lists all suppliers.
func (h *CatalogHandler) HandleGetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers()
	if err != nil {
		log.Printf("Error getting all suppliers: %v", err)
		return errorResponse(c, "Could not retrieve suppliers", err)
	}
	return c.JSON(suppliers)
}

// HandleGetSupplierByID retrieves a single supplier.
func (h *CatalogHandler) HandleGetSupplierByID(c *fiber.Ctx) error {
	id := c.Params("id")
	supplier, err := h.service.GetSupplierByID(id)
	if err != nil {
		log.Printf("Error getting supplier %s: %v", id, err)
		return errorResponse(c, "Could not retrieve supplier", err)
	}
	return c.JSON(supplier)
}

// HandleCreateSupplier creates a supplier.
func (h *CatalogHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(supplier); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateSupplier(&supplier); err != nil {
		log.Printf("Error creating supplier: %v", err)
		return errorResponse(c, "Could not create supplier", err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// HandleUpdateSupplier updates a supplier.
func (h *CatalogHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return invalidBody(c, err)
	}
	supplier.ID = c.Params("id")
	if err := h.validate.Struct(supplier); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateSupplier(&supplier); err != nil {
		log.Printf("Error updating supplier %s: %v", supplier.ID, err)
		return errorResponse(c, "Could not update supplier", err)
	}
	return c.JSON(supplier)
}

// HandleDeleteSupplier deletes a supplier.
func (h *CatalogHandler) HandleDeleteSupplier(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteSupplier(id); err != nil {
		log.Printf("Error deleting supplier %s: %v", id, err)
		return errorResponse(c, "Could not delete supplier", err)
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted"})
}

func invalidBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
