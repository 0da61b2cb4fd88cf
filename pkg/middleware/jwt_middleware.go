package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"placeholder/internal/models/db_models"
	"placeholder/pkg/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	UserIDKey  = "user_id"
	AccountKey = "account"
)

// IdentityResolver turns a bearer token into the account it was issued to.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*db_models.Account, error)
}

func JWTAuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		account, err := resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		// Pass the acting identity to the next handler
		c.Set(UserIDKey, account.ID)
		c.Set(AccountKey, account)
		c.Next()
	}
}
