package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-pos/access"
	"restaurant-pos/middleware"
)

// Navigation returns the sidebar items visible to the caller
func (h *Handler) Navigation(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	items := access.Navigation(middleware.Translator(c), p)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

type accessCheckQuery struct {
	Route string `form:"route" binding:"required"`
}

// AccessCheck tells whether the caller may open a dashboard route
func (h *Handler) AccessCheck(c *gin.Context) {
	var q accessCheckQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, _ := middleware.GetPrincipal(c)
	c.JSON(http.StatusOK, gin.H{
		"route":   q.Route,
		"allowed": access.CanAccess(p.Role, q.Route),
	})
}

type rolePreviewURI struct {
	Role string `uri:"role" binding:"required,pos_role"`
}

// RolePreview shows what a given role would land on and see
func (h *Handler) RolePreview(c *gin.Context) {
	var uri rolePreviewURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + c.Param("role")})
		return
	}
	tr := middleware.Translator(c)
	role := access.Role(uri.Role)
	c.JSON(http.StatusOK, gin.H{
		"profile":    access.ProfileFor(role),
		"role_label": access.DisplayLabelFor(tr, role),
		"navigation": access.Navigation(tr, access.Principal{Role: role}),
	})
}

// Roles lists the closed role set with labels and badge colors
func (h *Handler) Roles(c *gin.Context) {
	tr := middleware.Translator(c)
	roles := access.Roles()
	out := make([]gin.H, 0, len(roles))
	for _, r := range roles {
		out = append(out, gin.H{
			"role":          r,
			"label":         access.DisplayLabelFor(tr, r),
			"badge_color":   access.BadgeColorFor(r),
			"landing_route": access.DefaultRouteFor(r),
		})
	}
	c.JSON(http.StatusOK, gin.H{"roles": out})
}
