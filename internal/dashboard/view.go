package dashboard

import (
	"sort"

	"github.com/Skotchmaster/order_management/internal/models"
	"github.com/Skotchmaster/order_management/internal/transport"
)

const StatusAll = "All"

// StatusOptions is the filter selector content.
func StatusOptions() []string {
	return append([]string{StatusAll}, models.OrderStatuses...)
}

// FilterByStatus keeps orders whose status equals status exactly.
// StatusAll returns the input unchanged.
func FilterByStatus(orders []transport.OrderResponse, status string) []transport.OrderResponse {
	if status == StatusAll {
		return orders
	}
	out := make([]transport.OrderResponse, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// SortByQuantity returns a copy ordered by quantity, largest first. Equal
// quantities keep their input order.
func SortByQuantity(orders []transport.OrderResponse) []transport.OrderResponse {
	out := make([]transport.OrderResponse, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity > out[j].Quantity
	})
	return out
}

// NextStatus cycles through StatusOptions.
func NextStatus(current string) string {
	opts := StatusOptions()
	for i, s := range opts {
		if s == current {
			return opts[(i+1)%len(opts)]
		}
	}
	return StatusAll
}

func IsStatusOption(s string) bool {
	for _, o := range StatusOptions() {
		if o == s {
			return true
		}
	}
	return false
}
