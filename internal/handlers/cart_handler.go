package handlers

import (
	"log"

	"eshop/internal/dto"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for carts, cart items, and checkout.
type CartHandler struct {
	cartService     *services.CartService
	cartItemService *services.CartItemService
	productService  *services.ProductService
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, cartItemService *services.CartItemService, productService *services.ProductService, checkoutService *services.CheckoutService, validate *validator.Validate) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		cartItemService: cartItemService,
		productService:  productService,
		checkoutService: checkoutService,
		validate:        validate,
	}
}

// RegisterRoutes registers the cart and cart item routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Get("/", h.HandleGetCarts)
	cartRoutes.Get("/user/:userId", h.HandleGetCartByUserID)
	cartRoutes.Get("/:id", h.HandleGetCartByID)
	cartRoutes.Get("/:id/purchase", h.HandlePurchaseCart)
	cartRoutes.Get("/:id/total", h.HandleGetCartTotal)
	cartRoutes.Post("/", h.HandleCreateCart)
	cartRoutes.Put("/:id", h.HandleUpdateCart)
	cartRoutes.Delete("/:id", h.HandleDeleteCart)

	itemRoutes := router.Group("/cart-items")
	itemRoutes.Get("/", h.HandleGetCartItems)
	itemRoutes.Get("/:id", h.HandleGetCartItemByID)
	itemRoutes.Post("/", h.HandleCreateCartItem)
	itemRoutes.Put("/:id", h.HandleUpdateCartItem)
	itemRoutes.Delete("/:id", h.HandleDeleteCartItem)
}

// HandleGetCarts retrieves all carts.
func (h *CartHandler) HandleGetCarts(c *fiber.Ctx) error {
	carts, err := h.cartService.GetAllCarts()
	if err != nil {
		log.Printf("Error getting all carts: %v", err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCartInfos(carts))
}

// HandleGetCartByID retrieves a single cart by its ID.
func (h *CartHandler) HandleGetCartByID(c *fiber.Ctx) error {
	cart, err := h.cartService.GetCartByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting cart by ID %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCartInfo(cart))
}

// HandleGetCartByUserID retrieves the cart owned by a user.
func (h *CartHandler) HandleGetCartByUserID(c *fiber.Ctx) error {
	cart, err := h.cartService.GetCartByUserID(c.Params("userId"))
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", c.Params("userId"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCartInfo(cart))
}

// HandlePurchaseCart runs the checkout for everything in the cart and returns
// true on success.
func (h *CartHandler) HandlePurchaseCart(c *fiber.Ctx) error {
	cartID := c.Params("id")
	ok, err := h.checkoutService.PurchaseCart(cartID)
	if err != nil {
		log.Printf("Error purchasing cart %s: %v", cartID, err)
		return respondError(c, err)
	}
	return c.JSON(ok)
}

// HandleGetCartTotal computes the price*quantity total of the cart's current
// contents at current product prices.
func (h *CartHandler) HandleGetCartTotal(c *fiber.Ctx) error {
	cartID := c.Params("id")
	if _, err := h.cartService.GetCartByID(cartID); err != nil {
		return respondError(c, err)
	}
	items, err := h.cartItemService.GetCartItemsByCartID(cartID)
	if err != nil {
		log.Printf("Error getting items for cart %s: %v", cartID, err)
		return respondError(c, err)
	}
	total, err := h.productService.TotalPriceOfItems(items)
	if err != nil {
		log.Printf("Error totaling cart %s: %v", cartID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"cart_id": cartID,
		"total":   total,
	})
}

// HandleCreateCart creates a new cart.
func (h *CartHandler) HandleCreateCart(c *fiber.Ctx) error {
	var entry dto.CartEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	cart := dto.FromCartEntry(entry)
	if err := h.cartService.CreateCart(cart); err != nil {
		log.Printf("Error creating cart: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCartInfo(cart))
}

// HandleUpdateCart updates an existing cart.
func (h *CartHandler) HandleUpdateCart(c *fiber.Ctx) error {
	var entry dto.CartEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	updated, err := h.cartService.UpdateCart(c.Params("id"), dto.FromCartEntry(entry))
	if err != nil {
		log.Printf("Error updating cart %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCartInfo(updated))
}

// HandleDeleteCart deletes a cart and its items.
func (h *CartHandler) HandleDeleteCart(c *fiber.Ctx) error {
	if err := h.cartService.DeleteCart(c.Params("id")); err != nil {
		log.Printf("Error deleting cart %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart deleted successfully",
	})
}

// HandleGetCartItems retrieves cart items, optionally filtered by cart_id.
func (h *CartHandler) HandleGetCartItems(c *fiber.Ctx) error {
	if cartID := c.Query("cart_id"); cartID != "" {
		items, err := h.cartItemService.GetCartItemsByCartID(cartID)
		if err != nil {
			log.Printf("Error getting items for cart %s: %v", cartID, err)
			return respondError(c, err)
		}
		return c.JSON(dto.ToCartItemInfos(items))
	}
	items, err := h.cartItemService.GetAllCartItems()
	if err != nil {
		log.Printf("Error getting all cart items: %v", err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCartItemInfos(items))
}

// HandleGetCartItemByID retrieves a single cart item by its ID.
func (h *CartHandler) HandleGetCartItemByID(c *fiber.Ctx) error {
	item, err := h.cartItemService.GetCartItemByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting cart item by ID %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCartItemInfo(item))
}

// HandleCreateCartItem creates a new cart item.
func (h *CartHandler) HandleCreateCartItem(c *fiber.Ctx) error {
	var entry dto.CartItemEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing cart item request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	item := dto.FromCartItemEntry(entry)
	if err := h.cartItemService.CreateCartItem(item); err != nil {
		log.Printf("Error creating cart item: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCartItemInfo(item))
}

// HandleUpdateCartItem updates an existing cart item.
func (h *CartHandler) HandleUpdateCartItem(c *fiber.Ctx) error {
	var entry dto.CartItemEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing cart item request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	updated, err := h.cartItemService.UpdateCartItem(c.Params("id"), dto.FromCartItemEntry(entry))
	if err != nil {
		log.Printf("Error updating cart item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCartItemInfo(updated))
}

// HandleDeleteCartItem deletes a cart item by its ID.
func (h *CartHandler) HandleDeleteCartItem(c *fiber.Ctx) error {
	if err := h.cartItemService.DeleteCartItem(c.Params("id")); err != nil {
		log.Printf("Error deleting cart item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart item deleted successfully",
	})
}
