package dto

import "eshop/internal/models"

// CategoryEntry is the inbound shape for creating or updating a category.
type CategoryEntry struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// CategoryInfo is the outbound shape for a category.
type CategoryInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// FromCategoryEntry maps an entry DTO onto a fresh entity.
func FromCategoryEntry(e CategoryEntry) *models.Category {
	return &models.Category{
		Title: e.Title,
	}
}

// ToCategoryInfo maps a category entity to its outbound shape.
func ToCategoryInfo(c *models.Category) CategoryInfo {
	return CategoryInfo{
		ID:    c.ID,
		Title: c.Title,
	}
}

// ToCategoryInfos maps a slice of category entities.
func ToCategoryInfos(categories []models.Category) []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(categories))
	for i := range categories {
		infos = append(infos, ToCategoryInfo(&categories[i]))
	}
	return infos
}

// ProductEntry is the inbound shape for creating or updating a product. The
// category is referenced by ID and resolved by the service, which fails closed
// when the ID does not exist.
type ProductEntry struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	SKU         string  `json:"sku" validate:"required,max=64"`
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	InStock     int     `json:"in_stock" validate:"gte=0"`
}

// ProductInfo is the outbound shape for a product.
type ProductInfo struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SKU           string  `json:"sku"`
	CategoryID    string  `json:"category_id"`
	CategoryTitle string  `json:"category_title,omitempty"`
	Price         float64 `json:"price"`
	InStock       int     `json:"in_stock"`
}

// FromProductEntry maps an entry DTO onto a fresh entity.
func FromProductEntry(e ProductEntry) *models.Product {
	return &models.Product{
		Name:        e.Name,
		Description: e.Description,
		SKU:         e.SKU,
		CategoryID:  e.CategoryID,
		Price:       e.Price,
		InStock:     e.InStock,
	}
}

// ToProductInfo maps a product entity to its outbound shape.
func ToProductInfo(p *models.Product) ProductInfo {
	info := ProductInfo{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		InStock:     p.InStock,
	}
	if p.Category != nil {
		info.CategoryTitle = p.Category.Title
	}
	return info
}

// ToProductInfos maps a slice of product entities.
func ToProductInfos(products []models.Product) []ProductInfo {
	infos := make([]ProductInfo, 0, len(products))
	for i := range products {
		infos = append(infos, ToProductInfo(&products[i]))
	}
	return infos
}
