package repo

import "github.com/Skotchmaster/order_management/internal/models"

// FixtureProducts are inserted first, so after a reset they get ids 1..4.
func FixtureProducts() []models.Product {
	return []models.Product{
		{Name: "Laptop", Description: "High-performance laptop", Price: 199999.99, Category: "Electronics"},
		{Name: "Smartphone", Description: "Latest model smartphone", Price: 165999.99, Category: "Electronics"},
		{Name: "Desk Chair", Description: "Ergonomic office chair", Price: 7599.99, Category: "Furniture"},
		{Name: "Coffee Maker", Description: "Automatic coffee machine", Price: 3599.99, Category: "Appliances"},
	}
}

type fixtureOrder struct {
	CustomerName string
	// position in FixtureProducts
	Product  int
	Quantity int
	Status   string
}

var fixtureOrders = []fixtureOrder{
	{CustomerName: "Vijay", Product: 0, Quantity: 1, Status: models.OrderStatusPending},
	{CustomerName: "Mike", Product: 1, Quantity: 2, Status: models.OrderStatusShipped},
	{CustomerName: "Sushmi", Product: 2, Quantity: 1, Status: models.OrderStatusDelivered},
	{CustomerName: "Sen", Product: 3, Quantity: 3, Status: models.OrderStatusPending},
}

// FixtureOrders binds the order fixtures to already-created products.
func FixtureOrders(products []models.Product) []models.Order {
	orders := make([]models.Order, 0, len(fixtureOrders))
	for _, f := range fixtureOrders {
		orders = append(orders, models.Order{
			CustomerName: f.CustomerName,
			ProductID:    products[f.Product].ID,
			Quantity:     f.Quantity,
			Status:       f.Status,
		})
	}
	return orders
}
