package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"restaurant-pos/middleware"
	"restaurant-pos/models"
	"restaurant-pos/reports"
)

const (
	overviewTopProducts = 5
	defaultTopProducts  = 5
)

// DashboardOverview loads stats, active orders and best sellers in parallel
// and returns the overview page model
func (h *Handler) DashboardOverview(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	tr := middleware.Translator(c)
	now := h.Now()

	var (
		stats  reports.DashboardStats
		active []models.Order
		top    []reports.ProductSales
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		stats, err = reports.GetDashboardStats(ctx, h.DB, now)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = reports.ActiveOrders(ctx, h.DB)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = reports.TopProducts(ctx, h.DB, overviewTopProducts)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("dashboard overview", zap.Error(err), zap.String("request_id", middleware.RequestID(c)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": tr.T("app.error")})
		return
	}

	c.JSON(http.StatusOK, reports.BuildOverview(tr, p.Role, stats, active, top, now))
}

// DashboardStats returns the raw headline figures
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := reports.GetDashboardStats(c.Request.Context(), h.DB, h.Now())
	if err != nil {
		h.Log.Error("dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

type topProductsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// TopProducts returns the best sellers, five by default
func (h *Handler) TopProducts(c *gin.Context) {
	var q topProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultTopProducts
	}
	top, err := reports.TopProducts(c.Request.Context(), h.DB, q.Limit)
	if err != nil {
		h.Log.Error("top products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(top), "products": top})
}
