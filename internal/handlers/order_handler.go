package handlers

import (
	"log"

	"eshop/internal/dto"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders and order items.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the order and order item routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Put("/:id", h.HandleUpdateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)

	itemRoutes := router.Group("/order-items")
	itemRoutes.Get("/", h.HandleGetOrderItems)
	itemRoutes.Get("/:id", h.HandleGetOrderItemByID)
	itemRoutes.Post("/", h.HandleCreateOrderItem)
	itemRoutes.Delete("/:id", h.HandleDeleteOrderItem)
}

// HandleGetOrders retrieves orders, optionally filtered by user_id.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	if userID := c.Query("user_id"); userID != "" {
		orders, err := h.service.GetOrdersByUserID(userID)
		if err != nil {
			log.Printf("Error getting orders for user %s: %v", userID, err)
			return respondError(c, err)
		}
		return c.JSON(dto.ToOrderInfos(orders))
	}
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrderInfos(orders))
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrderInfo(order))
}

// HandleCreateOrder creates a new order directly, outside the checkout flow.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var entry dto.OrderEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	order := dto.FromOrderEntry(entry)
	if err := h.service.CreateOrder(order); err != nil {
		log.Printf("Error creating order: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToOrderInfo(order))
}

// HandleUpdateOrder updates an existing order.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	var entry dto.OrderEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	updated, err := h.service.UpdateOrder(c.Params("id"), dto.FromOrderEntry(entry))
	if err != nil {
		log.Printf("Error updating order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrderInfo(updated))
}

// HandleDeleteOrder deletes an order and its items.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.service.DeleteOrder(c.Params("id")); err != nil {
		log.Printf("Error deleting order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Order deleted successfully",
	})
}

// HandleGetOrderItems retrieves order items, optionally filtered by order_id.
func (h *OrderHandler) HandleGetOrderItems(c *fiber.Ctx) error {
	if orderID := c.Query("order_id"); orderID != "" {
		items, err := h.service.GetOrderItemsByOrderID(orderID)
		if err != nil {
			log.Printf("Error getting items for order %s: %v", orderID, err)
			return respondError(c, err)
		}
		return c.JSON(dto.ToOrderItemInfos(items))
	}
	items, err := h.service.GetAllOrderItems()
	if err != nil {
		log.Printf("Error getting all order items: %v", err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrderItemInfos(items))
}

// HandleGetOrderItemByID retrieves a single order item by its ID.
func (h *OrderHandler) HandleGetOrderItemByID(c *fiber.Ctx) error {
	item, err := h.service.GetOrderItemByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting order item by ID %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrderItemInfo(item))
}

// HandleCreateOrderItem adds an item to an existing order.
func (h *OrderHandler) HandleCreateOrderItem(c *fiber.Ctx) error {
	var entry dto.OrderItemEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing order item request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	item := dto.FromOrderItemEntry(entry)
	if err := h.service.CreateOrderItem(item); err != nil {
		log.Printf("Error creating order item: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToOrderItemInfo(item))
}

// HandleDeleteOrderItem deletes an order item by its ID.
func (h *OrderHandler) HandleDeleteOrderItem(c *fiber.Ctx) error {
	if err := h.service.DeleteOrderItem(c.Params("id")); err != nil {
		log.Printf("Error deleting order item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Order item deleted successfully",
	})
}
