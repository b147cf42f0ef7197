package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant-pos/access"
	"restaurant-pos/i18n"
	"restaurant-pos/models"
	"restaurant-pos/testkit"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func seedReports(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := []models.Product{
		{ID: 1, Name: "Burger", Price: 5},
		{ID: 2, Name: "Fries", Price: 3},
		{ID: 3, Name: "Soda", Price: 2.5},
	}
	require.NoError(t, db.Create(&products).Error)

	tables := []models.DiningTable{
		{ID: 1, Number: "T1", Occupied: true},
		{ID: 2, Number: "T2"},
		{ID: 3, Number: "T3"},
		{ID: 4, Number: "T4"},
	}
	require.NoError(t, db.Create(&tables).Error)

	orders := []models.Order{
		{OrderNumber: "ORD-1", OrderType: models.OrderDineIn, TableID: uintPtr(1), Status: models.StatusCompleted,
			Total: 20, CreatedAt: now.Add(-10 * time.Minute),
			Items: []models.OrderItem{
				{ProductID: 1, Quantity: 2, Price: 5, Name: "Burger"},
				{ProductID: 2, Quantity: 1, Price: 3, Name: "Fries"},
			}},
		{OrderNumber: "ORD-2", OrderType: models.OrderTakeaway, Status: models.StatusPending,
			Total: 15.5, CreatedAt: now.Add(-30 * time.Second),
			Items: []models.OrderItem{
				{ProductID: 1, Quantity: 1, Price: 5, Name: "Burger"},
				{ProductID: 3, Quantity: 4, Price: 2.5, Name: "Soda"},
			}},
		{OrderNumber: "ORD-3", OrderType: models.OrderDelivery, Status: models.StatusCancelled,
			Total: 100, CreatedAt: now.Add(-time.Hour),
			Items: []models.OrderItem{
				{ProductID: 2, Quantity: 10, Price: 3, Name: "Fries"},
			}},
		{OrderNumber: "ORD-0", OrderType: models.OrderDineIn, Status: models.StatusCompleted,
			Total: 10, CreatedAt: now.Add(-24 * time.Hour)},
	}
	require.NoError(t, db.Create(&orders).Error)
}

func TestGetDashboardStats(t *testing.T) {
	db := testkit.OpenDB(t)
	seedReports(t, db)

	stats, err := GetDashboardStats(context.Background(), db, now)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TodaysOrderCount)
	assert.InDelta(t, 35.5, stats.TodaysRevenue, 0.001)
	assert.InDelta(t, 17.75, stats.AvgOrderValue, 0.001)
	assert.Equal(t, int64(1), stats.OccupiedTables)
	assert.Equal(t, int64(4), stats.TotalTables)
	assert.Equal(t, int64(1), stats.Yesterday.OrderCount)
	assert.InDelta(t, 10.0, stats.Yesterday.Revenue, 0.001)
}

func TestGetDashboardStatsAcrossOffsets(t *testing.T) {
	db := testkit.OpenDB(t)
	paris := time.FixedZone("CEST", 2*60*60)
	newYork := time.FixedZone("EDT", -4*60*60)

	orders := []models.Order{
		// 2026-10-18 23:30 UTC, yesterday although its local date reads the 19th
		{OrderNumber: "ORD-P", Status: models.StatusCompleted, Total: 7,
			CreatedAt: time.Date(2026, 10, 19, 1, 30, 0, 0, paris)},
		// 2026-10-20 01:30 UTC, tomorrow although its local date reads the 19th
		{OrderNumber: "ORD-N", Status: models.StatusCompleted, Total: 9,
			CreatedAt: time.Date(2026, 10, 19, 21, 30, 0, 0, newYork)},
		// 2026-10-19 08:00 UTC
		{OrderNumber: "ORD-T", Status: models.StatusCompleted, Total: 4,
			CreatedAt: time.Date(2026, 10, 19, 10, 0, 0, 0, paris)},
	}
	require.NoError(t, db.Create(&orders).Error)

	stats, err := GetDashboardStats(context.Background(), db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TodaysOrderCount)
	assert.InDelta(t, 4.0, stats.TodaysRevenue, 0.001)
	assert.Equal(t, int64(1), stats.Yesterday.OrderCount)
	assert.InDelta(t, 7.0, stats.Yesterday.Revenue, 0.001)

	// the business day follows the location of now
	stats, err = GetDashboardStats(context.Background(), db, now.In(paris))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TodaysOrderCount)
	assert.InDelta(t, 11.0, stats.TodaysRevenue, 0.001)
}

func TestGetDashboardStatsEmpty(t *testing.T) {
	db := testkit.OpenDB(t)

	stats, err := GetDashboardStats(context.Background(), db, now)
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{}, stats)
}

func TestTopProducts(t *testing.T) {
	db := testkit.OpenDB(t)
	seedReports(t, db)

	top, err := TopProducts(context.Background(), db, 5)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "Soda", top[0].ProductName)
	assert.Equal(t, int64(4), top[0].TotalQuantity)
	assert.InDelta(t, 10.0, top[0].TotalRevenue, 0.001)
	assert.Equal(t, "Burger", top[1].ProductName)
	assert.Equal(t, int64(3), top[1].TotalQuantity)
	assert.Equal(t, "Fries", top[2].ProductName)
	assert.Equal(t, int64(1), top[2].TotalQuantity, "cancelled orders do not count")

	top, err = TopProducts(context.Background(), db, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestActiveOrdersAndKitchenQueue(t *testing.T) {
	db := testkit.OpenDB(t)
	seedReports(t, db)
	require.NoError(t, db.Create(&models.Order{
		OrderNumber: "ORD-4", Status: models.StatusReady, Total: 7, CreatedAt: now.Add(-5 * time.Minute),
	}).Error)

	active, err := ActiveOrders(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "ORD-2", active[0].OrderNumber)
	assert.Equal(t, "ORD-4", active[1].OrderNumber)
	assert.Len(t, active[0].Items, 2)

	queue, err := KitchenQueue(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "ORD-2", queue[0].OrderNumber)
}

func translator(t *testing.T, locale string) *i18n.Translator {
	t.Helper()
	c, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	return c.Translator(locale)
}

func TestBuildOverview(t *testing.T) {
	tr := translator(t, "fr")
	stats := DashboardStats{
		TodaysRevenue:    1234.5,
		TodaysOrderCount: 10,
		AvgOrderValue:    123.45,
		OccupiedTables:   1,
		TotalTables:      3,
		Yesterday:        Window{OrderCount: 10, Revenue: 987.6},
	}
	table := models.DiningTable{Number: "T7"}
	active := []models.Order{
		{OrderNumber: "A", Table: &table, Status: models.StatusPreparing, Total: 12,
			Items: []models.OrderItem{{Quantity: 2}, {Quantity: 1}}, CreatedAt: now.Add(-30 * time.Second)},
		{OrderNumber: "B", OrderType: models.OrderTakeaway, Status: models.StatusReady, Total: 8, CreatedAt: now.Add(-7 * time.Minute)},
		{OrderNumber: "C", OrderType: models.OrderDelivery, Status: models.OrderStatus("lost"), CreatedAt: now},
		{OrderNumber: "D"}, {OrderNumber: "E"}, {OrderNumber: "F"},
	}
	top := []ProductSales{
		{ProductName: "Soda", TotalQuantity: 4, TotalRevenue: 10},
		{ProductName: "Burger", TotalQuantity: 3, TotalRevenue: 15},
		{ProductName: "Fries", TotalQuantity: 2, TotalRevenue: 6},
		{ProductName: "Water", TotalQuantity: 1, TotalRevenue: 1},
	}

	ov := BuildOverview(tr, access.RoleManager, stats, active, top, now)

	require.Len(t, ov.Stats, 4)
	assert.Equal(t, "Chiffre d'affaires du jour", ov.Stats[0].Title)
	assert.Equal(t, "$1,234.50", ov.Stats[0].Value)
	assert.Equal(t, "+25.0%", ov.Stats[0].Change)
	assert.Equal(t, TrendUp, ov.Stats[0].Trend)
	assert.Equal(t, "10", ov.Stats[1].Value)
	assert.Equal(t, TrendNeutral, ov.Stats[1].Trend)
	assert.Equal(t, "1/3", ov.Stats[2].Value)
	assert.Equal(t, "33%", ov.Stats[2].Change)
	assert.Equal(t, "$123.45", ov.Stats[3].Value)

	require.Len(t, ov.RecentOrders, 5)
	assert.Equal(t, "T7", ov.RecentOrders[0].Table)
	assert.Equal(t, 3, ov.RecentOrders[0].Items)
	assert.Equal(t, "$12.00", ov.RecentOrders[0].Total)
	assert.Equal(t, "À l'instant", ov.RecentOrders[0].Time)
	assert.Equal(t, "clock", ov.RecentOrders[0].StatusIcon)
	assert.Equal(t, "À emporter", ov.RecentOrders[1].Table)
	assert.Equal(t, "Il y a 7 min", ov.RecentOrders[1].Time)
	assert.Equal(t, "check-circle", ov.RecentOrders[1].StatusIcon)
	assert.Equal(t, "Livraison", ov.RecentOrders[2].Table)
	assert.Equal(t, StatusColor(models.StatusPending), ov.RecentOrders[2].StatusColor)
	assert.Equal(t, "alert-circle", ov.RecentOrders[2].StatusIcon)

	require.Len(t, ov.TopProducts, 4)
	assert.Equal(t, 1, ov.TopProducts[0].Rank)
	assert.Equal(t, "bg-yellow-500 text-black", ov.TopProducts[0].Badge)
	assert.Equal(t, "bg-amber-700 text-white", ov.TopProducts[2].Badge)
	assert.Equal(t, "bg-slate-600 text-gray-300", ov.TopProducts[3].Badge)
	assert.Equal(t, "$15.00", ov.TopProducts[1].Revenue)

	assert.Empty(t, ov.QuickActions)
	assert.NotContains(t, ov.Sections, "quick_actions")
}

func TestBuildOverviewQuickActionsForAdmin(t *testing.T) {
	tr := translator(t, "en")
	ov := BuildOverview(tr, access.RoleAdmin, DashboardStats{}, nil, nil, now)

	require.Len(t, ov.QuickActions, 4)
	assert.Equal(t, "New Order", ov.QuickActions[0].Label)
	assert.Equal(t, "Quick Actions", ov.Sections["quick_actions"])
	for _, qa := range ov.QuickActions {
		assert.True(t, access.CanAccess(access.RoleAdmin, qa.Route), qa.Route)
	}

	assert.Equal(t, "$0.00", ov.Stats[0].Value)
	assert.Equal(t, "0%", ov.Stats[0].Change)
	assert.Equal(t, "0/0", ov.Stats[2].Value)
	assert.Equal(t, "0%", ov.Stats[2].Change)
	assert.Empty(t, ov.RecentOrders)
	assert.Empty(t, ov.TopProducts)
}

func TestChange(t *testing.T) {
	c, tr := change(90, 100)
	assert.Equal(t, "-10.0%", c)
	assert.Equal(t, TrendDown, tr)

	c, tr = change(5, 0)
	assert.Equal(t, "0%", c)
	assert.Equal(t, TrendNeutral, tr)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$12.50", Money(12.5))
	assert.Equal(t, "$1,234.50", Money(1234.5))
}
