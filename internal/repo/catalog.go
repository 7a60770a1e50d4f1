package repo

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/order_management/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListOrders resolves each order's product with a single LEFT JOIN.
func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	items := make([]models.Order, 0)
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Joins("Product").
		Order("orders.id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Reset drops every table, recreates the schema and inserts the fixtures.
// Existing data is lost.
func (r *GormRepo) Reset(ctx context.Context) error {
	db := r.DB.WithContext(ctx)

	if err := db.Migrator().DropTable(&models.Order{}, &models.Product{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return r.seed(ctx)
}

// EnsureSeeded creates missing tables and inserts the fixtures only into an
// empty store. It reports whether fixtures were written.
func (r *GormRepo) EnsureSeeded(ctx context.Context) (bool, error) {
	db := r.DB.WithContext(ctx)

	if err := db.AutoMigrate(models.All()...); err != nil {
		return false, fmt.Errorf("create tables: %w", err)
	}

	var total int64
	if err := db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	if total > 0 {
		return false, nil
	}

	if err := r.seed(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *GormRepo) seed(ctx context.Context) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := FixtureProducts()
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("insert products: %w", err)
		}

		orders := FixtureOrders(products)
		if err := tx.Omit(clause.Associations).Create(&orders).Error; err != nil {
			return fmt.Errorf("insert orders: %w", err)
		}
		return nil
	})
}
