package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
	"github.com/oficinapro/workshop-api/internal/utils"
)

type AuthMiddleware struct {
	config *config.Config
	repo   repository.Repository
}

func NewAuthMiddleware(config *config.Config, repo repository.Repository) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
		repo:   repo,
	}
}

// JWTAuth verifies the bearer token and reloads the user from storage. The
// request identity is always the live record: a deactivated user or a
// changed role takes effect on the next request even with a valid token.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims := jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(bearerToken[1], &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		})
		if err != nil || claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := m.repo.User().GetByID(c.Request.Context(), claims.Subject)
		if err != nil || !user.Active {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		identity := &domain.Identity{
			UserID:   user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			TenantID: user.HomeTenantID(),
		}

		ctx := context.WithValue(c.Request.Context(), utils.IdentityKey, identity)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(utils.IdentityKey), identity)
		c.Next()
	}
}

// RequireRole restricts a route to one role. SUPERADMIN passes every role
// check.
func (m *AuthMiddleware) RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.GetIdentityFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		if identity.Role != role && identity.Role != domain.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// RequireSuperAdmin restricts a route to the platform operator.
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.GetIdentityFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		if identity.Role != domain.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
