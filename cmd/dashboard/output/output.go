package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Skotchmaster/order_management/internal/transport"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Error prints an error message
func Error(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, errorStyle.Render("✗ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Info prints an info message
func Info(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, infoStyle.Render("ℹ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Muted prints a muted message
func Muted(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Title prints a section header
func Title(w io.Writer, title string) {
	fmt.Fprintln(w, primaryStyle.Render(title))
}

// StatusStyle colors an order status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "Delivered":
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case "Shipped":
		return lipgloss.NewStyle().Foreground(colorInfo)
	case "Pending":
		return lipgloss.NewStyle().Foreground(colorWarning)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
}

var OrderHeaders = []string{"ID", "Customer", "Product ID", "Product", "Quantity", "Status"}

func OrderRow(o transport.OrderResponse) []string {
	product := ""
	if o.Product != nil {
		product = o.Product.Name
	}
	return []string{
		strconv.FormatUint(uint64(o.ID), 10),
		o.CustomerName,
		strconv.FormatUint(uint64(o.ProductID), 10),
		product,
		strconv.Itoa(o.Quantity),
		o.Status,
	}
}

var ProductHeaders = []string{"ID", "Name", "Description", "Price", "Category"}

func ProductRow(p transport.ProductResponse) []string {
	return []string{
		strconv.FormatUint(uint64(p.ID), 10),
		p.Name,
		p.Description,
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		p.Category,
	}
}

func OrdersTable(orders []transport.OrderResponse) string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, OrderRow(o))
	}
	statusCol := len(OrderHeaders) - 1

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(OrderHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusCol && row >= 0 && row < len(rows) {
				return StatusStyle(rows[row][col]).Padding(0, 1)
			}
			return cellStyle
		}).
		String()
}

func ProductsTable(products []transport.ProductResponse) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductRow(p))
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(ProductHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
