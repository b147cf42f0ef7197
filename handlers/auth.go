package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant-pos/access"
	"restaurant-pos/i18n"
	"restaurant-pos/middleware"
	"restaurant-pos/models"
	"restaurant-pos/seed"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionView is what the frontend needs right after login
type SessionView struct {
	User         access.Principal `json:"user"`
	RoleLabel    string           `json:"role_label"`
	BadgeColor   string           `json:"badge_color"`
	LandingRoute string           `json:"landing_route"`
	Navigation   []access.NavItem `json:"navigation"`
}

func sessionView(tr *i18n.Translator, p access.Principal) SessionView {
	return SessionView{
		User:         p,
		RoleLabel:    access.DisplayLabelFor(tr, p.Role),
		BadgeColor:   access.BadgeColorFor(p.Role),
		LandingRoute: access.DefaultRouteFor(p.Role),
		Navigation:   access.Navigation(tr, p),
	}
}

// Login authenticates a user by username and returns a JWT plus the session view
func (h *Handler) Login(c *gin.Context) {
	tr := middleware.Translator(c)
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.DB.WithContext(c.Request.Context()).Where("username = ?", req.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": tr.T("login.invalidCredentials")})
		return
	}
	if err != nil {
		h.Log.Error("load user", zap.Error(err), zap.String("request_id", middleware.RequestID(c)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": tr.T("app.error")})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": tr.T("login.invalidCredentials")})
		return
	}
	if !user.Active {
		c.JSON(http.StatusForbidden, gin.H{"error": tr.T("login.accountDisabled")})
		return
	}
	if !user.Role.Valid() {
		h.Log.Warn("user has a role outside the known set",
			zap.Uint("user_id", user.ID),
			zap.String("role", string(user.Role)))
	}

	token, err := h.Tokens.GenerateToken(&user)
	if err != nil {
		h.Log.Error("sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.Log.Info("login", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"session": sessionView(tr, user.Principal()),
	})
}

// Logout acknowledges the sign-out; tokens are stateless so the client drops its copy
func (h *Handler) Logout(c *gin.Context) {
	tr := middleware.Translator(c)
	if p, ok := middleware.GetPrincipal(c); ok {
		h.Log.Info("logout", zap.String("user_id", p.ID))
	}
	c.JSON(http.StatusOK, gin.H{"message": tr.T("login.signedOut")})
}

// Session returns the session view recomputed from the caller's token
func (h *Handler) Session(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	c.JSON(http.StatusOK, sessionView(middleware.Translator(c), p))
}

// DemoAccounts lists the accounts offered on the login page
func (h *Handler) DemoAccounts(c *gin.Context) {
	tr := middleware.Translator(c)
	accounts := seed.DemoAccounts()
	out := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, gin.H{
			"role":        a.Role,
			"username":    a.Username,
			"description": tr.T(a.DescriptionKey),
			"role_label":  access.DisplayLabelFor(tr, a.Role),
			"icon":        a.Icon,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"title":         tr.T("login.demoAccounts"),
		"info":          tr.T("login.demoInfo"),
		"password_hint": tr.T("login.demoPassword"),
		"accounts":      out,
	})
}

// FillDemoAccount returns the credentials a click on a demo account puts in the form
func (h *Handler) FillDemoAccount(c *gin.Context) {
	a, ok := seed.FindDemoAccount(c.Param("username"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Demo account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": a.Username,
		"password": seed.DemoPassword,
	})
}
