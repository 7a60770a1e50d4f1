package transport

import "github.com/Skotchmaster/order_management/internal/models"

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type OrderResponse struct {
	ID           uint             `json:"id"`
	CustomerName string           `json:"customer_name"`
	ProductID    uint             `json:"product_id"`
	Quantity     int              `json:"quantity"`
	Status       string           `json:"status"`
	Product      *ProductResponse `json:"product,omitempty"`
}

func NewProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
	}
}

func NewOrderResponse(o models.Order) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		ProductID:    o.ProductID,
		Quantity:     o.Quantity,
		Status:       o.Status,
	}
	// zero ID means the join found no product row
	if o.Product.ID != 0 {
		p := NewProductResponse(o.Product)
		resp.Product = &p
	}
	return resp
}
