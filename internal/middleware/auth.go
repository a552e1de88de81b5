package middleware

import (
	"strings"

	"repogenesis_backend/internal/auth"
	"repogenesis_backend/internal/models"
	"repogenesis_backend/internal/repositories"
	"repogenesis_backend/pkg/apperrors"
	"repogenesis_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware проверяет Bearer access токен нужного варианта
// и кладет claims в контекст запроса
func AuthMiddleware(tokens auth.TokenService, variant models.PrincipalVariant) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ParseAccessToken(tokenStr)
		if err != nil {
			abortWithError(c, apperrors.NewUnauthorizedError("Invalid or expired token"))
			return
		}
		if claims.Variant != variant {
			abortWithError(c, apperrors.NewUnauthorizedError("Invalid or expired token"))
			return
		}

		c.Set(contextkeys.PrincipalIDKey, claims.PrincipalID)
		c.Set(contextkeys.PrincipalRoleKey, claims.Role)
		c.Set(contextkeys.PrincipalVariantKey, claims.Variant)
		c.Next()
	}
}

// RequireRoles пускает дальше только принципалов с перечисленными ролями.
// Роль сверяется с записью в базе, а не только с claims токена.
func RequireRoles(principals repositories.PrincipalRepository, roles ...models.Role) gin.HandlerFunc {
	roleSet := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		principalID := GetPrincipalID(c)
		if principalID == "" {
			abortWithError(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			abortWithError(c, apperrors.InternalError(nil))
			return
		}

		principal, err := principals.FindByID(db.(*gorm.DB), principalID)
		if err != nil {
			abortWithError(c, apperrors.NewNotFoundError("Account not found"))
			return
		}

		if !roleSet[principal.Role] {
			abortWithError(c, apperrors.NewForbiddenError("Insufficient permissions"))
			return
		}

		c.Next()
	}
}

// GetPrincipalID извлекает id принципала из контекста
func GetPrincipalID(c *gin.Context) string {
	val, exists := c.Get(contextkeys.PrincipalIDKey)
	if !exists {
		return ""
	}

	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}

// GetPrincipalRole извлекает роль принципала из контекста
func GetPrincipalRole(c *gin.Context) models.Role {
	val, exists := c.Get(contextkeys.PrincipalRoleKey)
	if !exists {
		return ""
	}

	role, ok := val.(models.Role)
	if !ok {
		if s, isString := val.(string); isString {
			return models.Role(s)
		}
		return ""
	}
	return role
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.Abort()
	apperrors.HandleError(c, err)
}
