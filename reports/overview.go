package reports

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"restaurant-pos/access"
	"restaurant-pos/models"
)

// Translator is the subset of the i18n translator the overview needs
type Translator interface {
	access.Translator
	T(key string) string
	Sprintf(key string, args ...any) string
}

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// StatCard is one headline figure
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  Trend  `json:"trend"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// RecentOrder is an active order as listed on the overview
type RecentOrder struct {
	ID          string             `json:"id"`
	Table       string             `json:"table"`
	Items       int                `json:"items"`
	Total       string             `json:"total"`
	Status      models.OrderStatus `json:"status"`
	StatusColor string             `json:"status_color"`
	StatusIcon  string             `json:"status_icon"`
	Time        string             `json:"time"`
}

// RankedProduct is one row of the top products list
type RankedProduct struct {
	Rank    int    `json:"rank"`
	Name    string `json:"name"`
	Orders  int64  `json:"orders"`
	Revenue string `json:"revenue"`
	Badge   string `json:"badge"`
}

// QuickAction is a shortcut shown to administrators
type QuickAction struct {
	Label string `json:"label"`
	Route string `json:"route"`
	Icon  string `json:"icon"`
}

// Overview is everything the dashboard index renders
type Overview struct {
	Stats        []StatCard        `json:"stats"`
	RecentOrders []RecentOrder     `json:"recent_orders"`
	TopProducts  []RankedProduct   `json:"top_products"`
	QuickActions []QuickAction     `json:"quick_actions,omitempty"`
	Sections     map[string]string `json:"sections"`
}

const recentOrderLimit = 5

// quickActionRoles gates the quick actions panel
var quickActionRoles = []access.Role{access.RoleAdmin}

var quickActions = []struct {
	labelKey, route, icon string
}{
	{"dashboard.quickActions.newOrder", "/dashboard/pos", "shopping-cart"},
	{"dashboard.quickActions.addProduct", "/dashboard/products", "store"},
	{"dashboard.quickActions.manageStaff", "/dashboard/staff", "users"},
	{"dashboard.quickActions.viewReports", "/dashboard/reports", "file-text"},
}

var statusColors = map[models.OrderStatus]string{
	models.StatusPending:   "bg-yellow-500/20 text-yellow-400 border-yellow-500/30",
	models.StatusPreparing: "bg-blue-500/20 text-blue-400 border-blue-500/30",
	models.StatusReady:     "bg-green-500/20 text-green-400 border-green-500/30",
	models.StatusServed:    "bg-purple-500/20 text-purple-400 border-purple-500/30",
	models.StatusCompleted: "bg-gray-500/20 text-gray-400 border-gray-500/30",
}

var rankBadges = []string{
	"bg-yellow-500 text-black",
	"bg-gray-400 text-black",
	"bg-amber-700 text-white",
}

const defaultRankBadge = "bg-slate-600 text-gray-300"

// StatusColor returns the style token for status; unknown statuses look pending
func StatusColor(status models.OrderStatus) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return statusColors[models.StatusPending]
}

// StatusIcon returns the icon reference for status
func StatusIcon(status models.OrderStatus) string {
	switch status {
	case models.StatusPreparing:
		return "clock"
	case models.StatusReady, models.StatusServed, models.StatusCompleted:
		return "check-circle"
	default:
		return "alert-circle"
	}
}

// Money formats an amount the way the dashboard shows it
func Money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// change compares cur with prev as a signed percentage
func change(cur, prev float64) (string, Trend) {
	if prev == 0 {
		return "0%", TrendNeutral
	}
	pct := (cur - prev) / prev * 100
	switch {
	case pct > 0:
		return fmt.Sprintf("+%.1f%%", pct), TrendUp
	case pct < 0:
		return fmt.Sprintf("%.1f%%", pct), TrendDown
	default:
		return "0.0%", TrendNeutral
	}
}

func occupancy(occupied, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(occupied)/float64(total)*100)))
}

// BuildOverview assembles the overview for a caller with role
func BuildOverview(tr Translator, role access.Role, stats DashboardStats, active []models.Order, top []ProductSales, now time.Time) Overview {
	ov := Overview{
		Stats:        statCards(tr, stats),
		RecentOrders: recentOrders(tr, active, now),
		TopProducts:  rankProducts(top),
		Sections: map[string]string{
			"recent_orders": tr.T("dashboard.sections.recentOrders"),
			"top_products":  tr.T("dashboard.sections.topProducts"),
		},
	}
	if access.IsAllowed(role, quickActionRoles) {
		ov.Sections["quick_actions"] = tr.T("dashboard.sections.quickActions")
		for _, qa := range quickActions {
			ov.QuickActions = append(ov.QuickActions, QuickAction{
				Label: tr.T(qa.labelKey),
				Route: qa.route,
				Icon:  qa.icon,
			})
		}
	}
	return ov
}

func statCards(tr Translator, s DashboardStats) []StatCard {
	revChange, revTrend := change(s.TodaysRevenue, s.Yesterday.Revenue)
	cntChange, cntTrend := change(float64(s.TodaysOrderCount), float64(s.Yesterday.OrderCount))
	avgChange, avgTrend := change(s.AvgOrderValue, s.Yesterday.Average())

	return []StatCard{
		{
			Title:  tr.T("dashboard.stats.todayRevenue"),
			Value:  Money(s.TodaysRevenue),
			Change: revChange,
			Trend:  revTrend,
			Icon:   "dollar-sign",
			Color:  "from-green-500 to-emerald-600",
		},
		{
			Title:  tr.T("dashboard.stats.totalOrders"),
			Value:  fmt.Sprintf("%d", s.TodaysOrderCount),
			Change: cntChange,
			Trend:  cntTrend,
			Icon:   "shopping-cart",
			Color:  "from-blue-500 to-cyan-600",
		},
		{
			Title:  tr.T("dashboard.stats.activeTables"),
			Value:  fmt.Sprintf("%d/%d", s.OccupiedTables, s.TotalTables),
			Change: occupancy(s.OccupiedTables, s.TotalTables),
			Trend:  TrendNeutral,
			Icon:   "utensils-crossed",
			Color:  "from-purple-500 to-indigo-600",
		},
		{
			Title:  tr.T("dashboard.stats.avgOrderValue"),
			Value:  Money(s.AvgOrderValue),
			Change: avgChange,
			Trend:  avgTrend,
			Icon:   "clock",
			Color:  "from-orange-500 to-amber-600",
		},
	}
}

func tableLabel(tr Translator, o models.Order) string {
	if n := o.TableNumber(); n != "" {
		return n
	}
	if o.OrderType == models.OrderTakeaway {
		return tr.T("pos.orderTypes.takeaway")
	}
	return tr.T("pos.orderTypes.delivery")
}

func relativeTime(tr Translator, created, now time.Time) string {
	minutes := int(now.Sub(created).Minutes())
	if minutes < 1 {
		return tr.T("orders.time.justNow")
	}
	return tr.Sprintf("orders.time.minutesAgo", minutes)
}

func recentOrders(tr Translator, active []models.Order, now time.Time) []RecentOrder {
	n := min(len(active), recentOrderLimit)
	out := make([]RecentOrder, 0, n)
	for _, o := range active[:n] {
		items := 0
		for _, it := range o.Items {
			items += it.Quantity
		}
		out = append(out, RecentOrder{
			ID:          o.OrderNumber,
			Table:       tableLabel(tr, o),
			Items:       items,
			Total:       Money(o.Total),
			Status:      o.Status,
			StatusColor: StatusColor(o.Status),
			StatusIcon:  StatusIcon(o.Status),
			Time:        relativeTime(tr, o.CreatedAt, now),
		})
	}
	return out
}

func rankProducts(top []ProductSales) []RankedProduct {
	out := make([]RankedProduct, 0, len(top))
	for i, p := range top {
		badge := defaultRankBadge
		if i < len(rankBadges) {
			badge = rankBadges[i]
		}
		out = append(out, RankedProduct{
			Rank:    i + 1,
			Name:    p.ProductName,
			Orders:  p.TotalQuantity,
			Revenue: Money(p.TotalRevenue),
			Badge:   badge,
		})
	}
	return out
}
