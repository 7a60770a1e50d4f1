package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Skotchmaster/order_management/cmd/dashboard/output"
	"github.com/Skotchmaster/order_management/internal/dashboard"
	"github.com/Skotchmaster/order_management/internal/transport"
)

const minTableHeight = 5

// OrdersModel is the Bubbletea model for the orders dashboard
type OrdersModel struct {
	ctx     context.Context
	cache   *dashboard.OrderCache
	table   table.Model
	orders  []transport.OrderResponse
	status  string
	sorted  bool
	loading bool
	err     error
}

type ordersLoadedMsg struct {
	orders []transport.OrderResponse
	err    error
}

func loadOrdersCmd(ctx context.Context, cache *dashboard.OrderCache) tea.Cmd {
	return func() tea.Msg {
		orders, err := cache.Get(ctx)
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func NewOrdersModel(ctx context.Context, cache *dashboard.OrderCache, status string) OrdersModel {
	widths := []int{4, 12, 10, 14, 8, 10}
	cols := make([]table.Column, 0, len(output.OrderHeaders))
	for i, h := range output.OrderHeaders {
		cols = append(cols, table.Column{Title: h, Width: widths[i]})
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorPrimary)
	t.SetStyles(s)

	if !dashboard.IsStatusOption(status) {
		status = dashboard.StatusAll
	}

	return OrdersModel{
		ctx:     ctx,
		cache:   cache,
		table:   t,
		status:  status,
		loading: true,
	}
}

func (m OrdersModel) Init() tea.Cmd {
	return loadOrdersCmd(m.ctx, m.cache)
}

func (m OrdersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		m.loading = false
		m.orders = msg.orders
		m.err = msg.err
		m.sorted = false
		m.syncRows()
		return m, nil

	case tea.WindowSizeMsg:
		h := msg.Height - 12
		if h < minTableHeight {
			h = minTableHeight
		}
		m.table.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "f", "tab":
			m.status = dashboard.NextStatus(m.status)
			m.sorted = false
			m.syncRows()
			return m, nil
		case "s":
			m.sorted = true
			m.syncRows()
			return m, nil
		case "r":
			m.cache.Invalidate()
			m.loading = true
			return m, loadOrdersCmd(m.ctx, m.cache)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Visible returns the rows currently shown.
func (m OrdersModel) Visible() []transport.OrderResponse {
	rows := dashboard.FilterByStatus(m.orders, m.status)
	if m.sorted {
		rows = dashboard.SortByQuantity(rows)
	}
	return rows
}

func (m OrdersModel) Status() string { return m.status }

func (m OrdersModel) Err() error { return m.err }

func (m *OrdersModel) syncRows() {
	visible := m.Visible()
	rows := make([]table.Row, 0, len(visible))
	for _, o := range visible {
		rows = append(rows, table.Row(output.OrderRow(o)))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m OrdersModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📦 Order Management System"))
	b.WriteString("\n")

	b.WriteString(filterStyle.Render("Filter by Order Status: "))
	for _, s := range dashboard.StatusOptions() {
		if s == m.status {
			b.WriteString(activeFilterStyle.Render(s))
		} else {
			b.WriteString(inactiveFilterStyle.Render(s))
		}
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Failed to load orders."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	heading := "📝 Orders List"
	if m.sorted {
		heading += " (sorted by quantity)"
	}
	if m.loading {
		heading += mutedStyle.Render(" loading…")
	}
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(tableBorderStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d orders", len(m.Visible()), len(m.orders))))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(
		FormatKey("f/tab", "filter") + " • " +
			FormatKey("s", "sort by quantity") + " • " +
			FormatKey("r", "refresh") + " • " +
			FormatKey("q", "quit"),
	))

	return b.String()
}
