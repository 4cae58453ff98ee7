package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"session-booking/internal/handler/httperr"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware checks the bearer access token issued to front-end services.
type AuthMiddleware struct {
	tokens *jwt.Service
	logger *slog.Logger
}

const (
	ctxClientIDKey = "client_id"
	ctxRoleKey     = "client_role"
)

func NewAuthMiddleware(tokens *jwt.Service, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			m.logger.Warn("token validation failed", "error", err.Error(), "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxClientIDKey, claims.ClientID)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.ClientID,
			"role":    string(claims.Role),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role jwt.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := GetRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("role missing from context"), "Internal server error", nil)
			return
		}
		if got != role {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

func GetClientID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxClientIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func GetRole(c *gin.Context) (jwt.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(jwt.Role)
	return role, ok
}
