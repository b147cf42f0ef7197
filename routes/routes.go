package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"restaurant-pos/handlers"
	"restaurant-pos/i18n"
	"restaurant-pos/middleware"
)

// Options carries what the route table needs besides the handlers
type Options struct {
	Catalog       *i18n.Catalog
	DefaultLocale string
	LoginLimiter  *middleware.LoginLimiter
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler, opts Options) error {
	if err := handlers.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	r.Use(middleware.RequestLogger(h.Log), middleware.CORS(), middleware.Locale(opts.Catalog, opts.DefaultLocale))

	r.GET("/health", h.Health)
	r.GET("/", h.Welcome)

	auth := middleware.AuthRequired(h.Tokens, h.Log)
	gate := func(route string) gin.HandlerFunc {
		return middleware.RequireDestination(route, h.Log)
	}

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", opts.LoginLimiter.Middleware(), h.Login)
		public.GET("/auth/demo-accounts", h.DemoAccounts)
		public.POST("/auth/demo-accounts/:username/fill", h.FillDemoAccount)
		public.GET("/orders/state-machine", h.GetStateMachineInfo)
		public.GET("/roles", h.Roles)
	}

	// ── Authenticated routes ───────────────────────────────────────
	session := r.Group("/api")
	session.Use(auth)
	{
		session.POST("/auth/logout", h.Logout)
		session.GET("/session", h.Session)
		session.GET("/navigation", h.Navigation)
		session.GET("/access/check", h.AccessCheck)
		// the state machine decides per transition
		session.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// ── Dashboard sections, gated like the sidebar ─────────────────
	api := r.Group("/api")
	api.Use(auth)
	{
		api.GET("/dashboard", gate("/dashboard"), h.DashboardOverview)

		api.GET("/orders/active", gate("/dashboard/orders"), h.ActiveOrders)
		api.GET("/kitchen/orders", gate("/dashboard/kitchen"), h.KitchenOrders)

		api.GET("/reports/stats", gate("/dashboard/reports"), h.DashboardStats)
		api.GET("/reports/top-products", gate("/dashboard/reports"), h.TopProducts)

		api.GET("/staff/roles/:role", gate("/dashboard/staff"), h.RolePreview)
	}

	settingsGroup := r.Group("/api/settings")
	settingsGroup.Use(auth, gate("/dashboard/settings"))
	{
		settingsGroup.GET("", h.GetSettings)
		settingsGroup.GET("/defaults", h.GetDefaultSettings)
		settingsGroup.PUT("", h.UpdateSettings)
		settingsGroup.POST("/reset", h.ResetSettings)
	}
	return nil
}
