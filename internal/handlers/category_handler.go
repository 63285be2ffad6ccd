package handlers

import (
	"log"

	"eshop/internal/dto"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the category routes with the Fiber app. Writes are
// restricted by the admin middleware passed in.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", adminOnly, h.HandleCreateCategory)
	categoryRoutes.Put("/:id", adminOnly, h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", adminOnly, h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCategoryInfos(categories))
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting category by ID %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCategoryInfo(category))
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var entry dto.CategoryEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	category := dto.FromCategoryEntry(entry)
	if err := h.service.CreateCategory(category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCategoryInfo(category))
}

// HandleUpdateCategory updates an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var entry dto.CategoryEntry
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return respondBadBody(c, err)
	}
	if ok, resp := validateEntry(c, h.validate, entry); !ok {
		return resp
	}

	updated, err := h.service.UpdateCategory(c.Params("id"), dto.FromCategoryEntry(entry))
	if err != nil {
		log.Printf("Error updating category %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(dto.ToCategoryInfo(updated))
}

// HandleDeleteCategory deletes a category by its ID.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		log.Printf("Error deleting category %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
