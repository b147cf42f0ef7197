// Package reports computes the figures shown on the dashboard.
package reports

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"restaurant-pos/models"
	"restaurant-pos/statemachine"
)

// Window is the order count and revenue over one period
type Window struct {
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// Average is revenue per order, zero when there were no orders
func (w Window) Average() float64 {
	if w.OrderCount == 0 {
		return 0
	}
	return w.Revenue / float64(w.OrderCount)
}

// DashboardStats are the headline numbers of the overview page
type DashboardStats struct {
	TodaysRevenue    float64 `json:"todays_revenue"`
	TodaysOrderCount int64   `json:"todays_order_count"`
	AvgOrderValue    float64 `json:"avg_order_value"`
	OccupiedTables   int64   `json:"occupied_tables"`
	TotalTables      int64   `json:"total_tables"`
	Yesterday        Window  `json:"yesterday"`
}

// ProductSales aggregates what one product sold
type ProductSales struct {
	ProductID     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// StartOfDay is midnight of t's day in t's location. The caller's location
// decides where the business day starts.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func window(ctx context.Context, db *gorm.DB, from, to time.Time) (Window, error) {
	var w Window
	err := db.WithContext(ctx).Model(&models.Order{}).
		Select("COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS revenue").
		Where("created_at >= ? AND created_at < ? AND status <> ?", from.UTC(), to.UTC(), models.StatusCancelled).
		Scan(&w).Error
	if err != nil {
		return Window{}, fmt.Errorf("order window: %w", err)
	}
	return w, nil
}

// GetDashboardStats computes today's figures relative to now, plus yesterday's for comparison
func GetDashboardStats(ctx context.Context, db *gorm.DB, now time.Time) (DashboardStats, error) {
	today := StartOfDay(now)
	cur, err := window(ctx, db, today, today.AddDate(0, 0, 1))
	if err != nil {
		return DashboardStats{}, err
	}
	prev, err := window(ctx, db, today.AddDate(0, 0, -1), today)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TodaysRevenue:    cur.Revenue,
		TodaysOrderCount: cur.OrderCount,
		AvgOrderValue:    cur.Average(),
		Yesterday:        prev,
	}
	tables := db.WithContext(ctx).Model(&models.DiningTable{})
	if err := tables.Count(&stats.TotalTables).Error; err != nil {
		return DashboardStats{}, fmt.Errorf("count tables: %w", err)
	}
	err = db.WithContext(ctx).Model(&models.DiningTable{}).
		Where("occupied = ?", true).
		Count(&stats.OccupiedTables).Error
	if err != nil {
		return DashboardStats{}, fmt.Errorf("count occupied tables: %w", err)
	}
	return stats, nil
}

// TopProducts returns the best sellers by quantity over all non-cancelled orders
func TopProducts(ctx context.Context, db *gorm.DB, limit int) ([]ProductSales, error) {
	var out []ProductSales
	err := db.WithContext(ctx).Table("order_items").
		Select("products.id AS product_id, products.name AS product_name, " +
			"SUM(order_items.quantity) AS total_quantity, " +
			"SUM(order_items.quantity * order_items.price) AS total_revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.status <> ?", models.StatusCancelled).
		Group("products.id, products.name").
		Order("total_quantity DESC, products.name").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	return out, nil
}

// ActiveOrders returns orders still in progress, newest first
func ActiveOrders(ctx context.Context, db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.WithContext(ctx).Preload("Table").Preload("Items").
		Where("status IN ?", statemachine.ActiveStatuses()).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("active orders: %w", err)
	}
	return orders, nil
}

// KitchenQueue returns what the kitchen still has to cook, oldest first
func KitchenQueue(ctx context.Context, db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.WithContext(ctx).Preload("Table").Preload("Items").
		Where("status IN ?", []models.OrderStatus{models.StatusPending, models.StatusPreparing}).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("kitchen queue: %w", err)
	}
	return orders, nil
}
