package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dogecoinfoundation/doge-prize/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin surface. The server has exactly one
// administrator, so a valid token is the whole authorization story.
type AuthMiddleware struct {
	jwtSvc *jwt.Service
}

const ctxAdminTokenIDKey = "admin_token_id"

func NewAuthMiddleware(jwtSvc *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtSvc.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminTokenIDKey, claims.ID)
		c.Next()
	}
}

func GetAdminTokenID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminTokenIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
