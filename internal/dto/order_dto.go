package dto

import "eshop/internal/models"

// OrderEntry is the inbound shape for creating or updating an order manually.
// Checkout builds its orders itself; this path is for direct order CRUD.
type OrderEntry struct {
	UserID string  `json:"user_id" validate:"required,uuid"`
	Total  float64 `json:"total" validate:"gte=0"`
	Status string  `json:"status" validate:"omitempty,max=20"`
}

// OrderInfo is the outbound shape for an order.
type OrderInfo struct {
	ID     string          `json:"id"`
	UserID string          `json:"user_id"`
	Total  float64         `json:"total"`
	Status string          `json:"status"`
	Items  []OrderItemInfo `json:"items"`
}

// FromOrderEntry maps an entry DTO onto a fresh entity.
func FromOrderEntry(e OrderEntry) *models.Order {
	return &models.Order{
		UserID: e.UserID,
		Total:  e.Total,
		Status: e.Status,
	}
}

// ToOrderInfo maps an order entity to its outbound shape.
func ToOrderInfo(o *models.Order) OrderInfo {
	return OrderInfo{
		ID:     o.ID,
		UserID: o.UserID,
		Total:  o.Total,
		Status: o.Status,
		Items:  ToOrderItemInfos(o.Items),
	}
}

// ToOrderInfos maps a slice of order entities.
func ToOrderInfos(orders []models.Order) []OrderInfo {
	infos := make([]OrderInfo, 0, len(orders))
	for i := range orders {
		infos = append(infos, ToOrderInfo(&orders[i]))
	}
	return infos
}

// OrderItemEntry is the inbound shape for adding an item to an order.
type OrderItemEntry struct {
	OrderID   string `json:"order_id" validate:"required,uuid"`
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// OrderItemInfo is the outbound shape for an order item.
type OrderItemInfo struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
}

// FromOrderItemEntry maps an entry DTO onto a fresh entity.
func FromOrderItemEntry(e OrderItemEntry) *models.OrderItem {
	return &models.OrderItem{
		OrderID:   e.OrderID,
		ProductID: e.ProductID,
	}
}

// ToOrderItemInfo maps an order item entity to its outbound shape.
func ToOrderItemInfo(oi *models.OrderItem) OrderItemInfo {
	info := OrderItemInfo{
		ID:        oi.ID,
		OrderID:   oi.OrderID,
		ProductID: oi.ProductID,
	}
	if oi.Product != nil {
		info.ProductName = oi.Product.Name
		info.UnitPrice = oi.Product.Price
	}
	return info
}

// ToOrderItemInfos maps a slice of order item entities.
func ToOrderItemInfos(items []models.OrderItem) []OrderItemInfo {
	infos := make([]OrderItemInfo, 0, len(items))
	for i := range items {
		infos = append(infos, ToOrderItemInfo(&items[i]))
	}
	return infos
}
