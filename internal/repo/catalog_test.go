package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/order_management/internal/db"
	"github.com/Skotchmaster/order_management/internal/models"
)

func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func newResetRepo(t *testing.T) *GormRepo {
	t.Helper()
	r := &GormRepo{DB: InitTestDB(t)}
	require.NoError(t, r.Reset(context.Background()))
	return r
}

func TestResetSeedsFixtureProducts(t *testing.T) {
	r := newResetRepo(t)

	products, err := r.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	want := FixtureProducts()
	for i, p := range products {
		require.EqualValues(t, i+1, p.ID)
		require.Equal(t, want[i].Name, p.Name)
		require.Equal(t, want[i].Description, p.Description)
		require.Equal(t, want[i].Price, p.Price)
		require.Equal(t, want[i].Category, p.Category)
	}
}

func TestResetSeedsOrdersWithResolvedProducts(t *testing.T) {
	r := newResetRepo(t)

	orders, err := r.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 4)

	for _, o := range orders {
		require.Contains(t, []uint{1, 2, 3, 4}, o.ProductID)
		require.Equal(t, o.ProductID, o.Product.ID)
		require.NotEmpty(t, o.Product.Name)
	}

	mike := orders[1]
	require.EqualValues(t, 2, mike.ID)
	require.Equal(t, "Mike", mike.CustomerName)
	require.EqualValues(t, 2, mike.ProductID)
	require.Equal(t, 2, mike.Quantity)
	require.Equal(t, models.OrderStatusShipped, mike.Status)
	require.Equal(t, "Smartphone", mike.Product.Name)
}

func TestResetDiscardsExistingRows(t *testing.T) {
	r := newResetRepo(t)
	ctx := context.Background()

	require.NoError(t, r.DB.Create(&models.Product{Name: "extra", Description: "d", Price: 1, Category: "c"}).Error)
	require.NoError(t, r.Reset(ctx))

	products, err := r.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)
	require.EqualValues(t, 1, products[0].ID)
}

func TestEnsureSeededOnlySeedsEmptyStore(t *testing.T) {
	r := &GormRepo{DB: InitTestDB(t)}
	ctx := context.Background()

	seeded, err := r.EnsureSeeded(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = r.EnsureSeeded(ctx)
	require.NoError(t, err)
	require.False(t, seeded)

	products, err := r.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)

	orders, err := r.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 4)
}

func TestStatusDefaultsToPending(t *testing.T) {
	r := newResetRepo(t)

	order := models.Order{CustomerName: "Ana", ProductID: 1, Quantity: 5}
	require.NoError(t, r.DB.Omit("Product").Create(&order).Error)

	var stored models.Order
	require.NoError(t, r.DB.First(&stored, order.ID).Error)
	require.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestForeignKeyIsEnforced(t *testing.T) {
	r := newResetRepo(t)

	order := models.Order{CustomerName: "Ghost", ProductID: 99, Quantity: 1, Status: models.OrderStatusPending}
	require.Error(t, r.DB.Omit("Product").Create(&order).Error)
}

func TestListFailsOnClosedStore(t *testing.T) {
	r := newResetRepo(t)
	require.NoError(t, db.Close(r.DB))

	_, err := r.ListProducts(context.Background())
	require.Error(t, err)
	_, err = r.ListOrders(context.Background())
	require.Error(t, err)
	require.Error(t, r.Ping(context.Background()))
}
