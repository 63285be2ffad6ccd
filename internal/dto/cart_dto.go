package dto

import "eshop/internal/models"

// CartEntry is the inbound shape for creating or updating a cart. The user is
// referenced by ID and resolved by the service.
type CartEntry struct {
	UserID string  `json:"user_id" validate:"required,uuid"`
	Total  float64 `json:"total" validate:"gte=0"`
}

// CartInfo is the outbound shape for a cart.
type CartInfo struct {
	ID     string         `json:"id"`
	UserID string         `json:"user_id"`
	Total  float64        `json:"total"`
	Items  []CartItemInfo `json:"items"`
}

// FromCartEntry maps an entry DTO onto a fresh entity.
func FromCartEntry(e CartEntry) *models.Cart {
	return &models.Cart{
		UserID: e.UserID,
		Total:  e.Total,
	}
}

// ToCartInfo maps a cart entity to its outbound shape.
func ToCartInfo(c *models.Cart) CartInfo {
	return CartInfo{
		ID:     c.ID,
		UserID: c.UserID,
		Total:  c.Total,
		Items:  ToCartItemInfos(c.Items),
	}
}

// ToCartInfos maps a slice of cart entities.
func ToCartInfos(carts []models.Cart) []CartInfo {
	infos := make([]CartInfo, 0, len(carts))
	for i := range carts {
		infos = append(infos, ToCartInfo(&carts[i]))
	}
	return infos
}

// CartItemEntry is the inbound shape for creating or updating a cart item.
// Cart and product are referenced by ID and resolved by the service.
type CartItemEntry struct {
	CartID    string `json:"cart_id" validate:"required,uuid"`
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CartItemInfo is the outbound shape for a cart item.
type CartItemInfo struct {
	ID          string  `json:"id"`
	CartID      string  `json:"cart_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	Quantity    int     `json:"quantity"`
}

// FromCartItemEntry maps an entry DTO onto a fresh entity.
func FromCartItemEntry(e CartItemEntry) *models.CartItem {
	return &models.CartItem{
		CartID:    e.CartID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
	}
}

// ToCartItemInfo maps a cart item entity to its outbound shape.
func ToCartItemInfo(ci *models.CartItem) CartItemInfo {
	info := CartItemInfo{
		ID:        ci.ID,
		CartID:    ci.CartID,
		ProductID: ci.ProductID,
		Quantity:  ci.Quantity,
	}
	if ci.Product != nil {
		info.ProductName = ci.Product.Name
		info.UnitPrice = ci.Product.Price
	}
	return info
}

// ToCartItemInfos maps a slice of cart item entities.
func ToCartItemInfos(items []models.CartItem) []CartItemInfo {
	infos := make([]CartItemInfo, 0, len(items))
	for i := range items {
		infos = append(infos, ToCartItemInfo(&items[i]))
	}
	return infos
}
