package delivery

import (
	"strings"

	"voicelog-backend/internal/auth/usecase"
	"voicelog-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

const userContextKey = "authUser"

func AuthMiddleware(verifier usecase.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apperr.Write(c, apperr.Unauthenticated("authorization header required"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			apperr.Write(c, apperr.Unauthenticated("invalid authorization header format"))
			c.Abort()
			return
		}

		user, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			apperr.Write(c, apperr.Unauthenticated("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// UserFrom returns the verified user stored by AuthMiddleware.
func UserFrom(c *gin.Context) *usecase.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*usecase.User); ok {
			return user
		}
	}
	return nil
}
