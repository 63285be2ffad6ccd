package handlers

import (
	"log"

	"eshop/internal/dto"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user management and per-user product
// views.
type UserHandler struct {
	service        *services.UserService
	productService *services.ProductService
	validate       *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, productService *services.ProductService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:        service,
		productService: productService,
		validate:       validate,
	}
}

// RegisterRoutes registers the user routes with the Fiber app. The whole
// group is restricted by the admin middleware passed in.
func (h *UserHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	userRoutes := router.Group("/users", adminOnly)
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Get("/:id/ordered-products", h.HandleGetOrderedProducts)
	userRoutes.Get("/:id/cart-products", h.HandleGetCartProducts)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToUserInfos(users))
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting user by ID %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToUserInfo(user))
}

// HandleGetOrderedProducts retrieves the products a user has ordered.
func (h *UserHandler) HandleGetOrderedProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetProductsOrderedByUser(c.Params("id"))
	if err != nil {
		log.Printf("Error getting products ordered by user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductInfos(products))
}

// HandleGetCartProducts retrieves the products currently in a user's cart.
func (h *UserHandler) HandleGetCartProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetProductsInCartByUser(c.Params("id"))
	if err != nil {
		log.Printf("Error getting products in cart of user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductInfos(products))
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var entry dto.UserEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing user request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	user := dto.FromUserEntry(entry)
	if err := h.service.CreateUser(user); err != nil {
		log.Printf("Error creating user: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToUserInfo(user))
}

// HandleUpdateUser updates an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var entry dto.UserEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing user request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	updated, err := h.service.UpdateUser(c.Params("id"), dto.FromUserEntry(entry))
	if err != nil {
		log.Printf("Error updating user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToUserInfo(updated))
}

// HandleDeleteUser deletes a user by their ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.Params("id")); err != nil {
		log.Printf("Error deleting user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
