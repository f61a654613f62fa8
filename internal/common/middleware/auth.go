package middleware

import (
	"strings"

	authservices "github.com/architect/eco-tracker/internal/auth/services"
	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/gin-gonic/gin"
)

// AuthRequired middleware validates the bearer token and stores the
// principal's user ID in the context as "user_id".
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			abortUnauthorized(c, "authorization header must use the Bearer scheme")
			return
		}

		userID, err := authservices.ValidateAccessToken(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := errors.Unauthorized(message)
	c.AbortWithStatusJSON(appErr.Status, appErr)
}

// CurrentUserID returns the authenticated principal's ID set by AuthRequired.
func CurrentUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}
