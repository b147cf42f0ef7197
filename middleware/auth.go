package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"restaurant-pos/access"
	"restaurant-pos/models"
)

const principalKey = "principal"

type Claims struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	FullName string      `json:"full_name"`
	Role     access.Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal converts verified claims into the access-control identity
func (c *Claims) Principal() access.Principal {
	return access.Principal{
		ID:       strconv.FormatUint(uint64(c.UserID), 10),
		Username: c.Username,
		FullName: c.FullName,
		Role:     c.Role,
	}
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken creates a signed JWT for a given user
func (ti *TokenIssuer) GenerateToken(user *models.User) (string, error) {
	now := ti.now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// ParseToken verifies tokenStr and returns its claims
func (ti *TokenIssuer) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AuthRequired validates the JWT and injects the principal into context
func AuthRequired(ti *TokenIssuer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			return
		}
		claims, err := ti.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Debug("rejected token", zap.Error(err), zap.String("request_id", RequestID(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(principalKey, claims.Principal())
		c.Next()
	}
}

// RequireDestination gates a handler behind the dashboard destination at route.
// It uses the same allowed-role data as the navigation menu.
func RequireDestination(route string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Principal not found in context"})
			return
		}
		if !access.CanAccess(p.Role, route) {
			log.Info("destination denied",
				zap.String("route", route),
				zap.String("role", string(p.Role)),
				zap.String("user_id", p.ID),
				zap.String("request_id", RequestID(c)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied to " + route,
			})
			return
		}
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Principal not found in context"})
			return
		}
		if !access.IsAllowed(p.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied. Required role(s): " + rolesString(roles),
			})
			return
		}
		c.Next()
	}
}

func rolesString(roles []access.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// GetPrincipal extracts the caller from context
func GetPrincipal(c *gin.Context) (access.Principal, bool) {
	val, ok := c.Get(principalKey)
	if !ok {
		return access.Principal{}, false
	}
	p, ok := val.(access.Principal)
	return p, ok
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	p, _ := GetPrincipal(c)
	id, _ := strconv.ParseUint(p.ID, 10, 64)
	return uint(id)
}
