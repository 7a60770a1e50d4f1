package models

const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

// OrderStatuses lists the known statuses in display order. Status is not
// validated against it on write.
var OrderStatuses = []string{OrderStatusPending, OrderStatusShipped, OrderStatusDelivered}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"index;not null"            json:"name"`
	Description string  `gorm:"not null"                  json:"description"`
	Price       float64 `gorm:"not null"                  json:"price"`
	Category    string  `gorm:"not null"                  json:"category"`
}

type Order struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"          json:"id"`
	CustomerName string  `gorm:"index;not null"                    json:"customer_name"`
	ProductID    uint    `gorm:"not null"                          json:"product_id"`
	Product      Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product"`
	Quantity     int     `gorm:"not null"                          json:"quantity"`
	Status       string  `gorm:"not null;default:Pending"          json:"status"`
}

// All returns the schema in creation order; drop in reverse.
func All() []any {
	return []any{&Product{}, &Order{}}
}
