package middlewares

import (
	"log/slog"
	"net/http"

	jwthandling "github.com/Barcodehub/metrics-api-reactive/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

// IsAdminUser requires a previously validated token with the admin flag set.
func IsAdminUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenValue, ok := c.Get("validatedToken")
		if !ok {
			slog.Warn("IsAdminUser: validatedToken not found in context")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validatedToken not found in context"})
			return
		}
		parsedToken := tokenValue.(*jwthandling.UserClaims)

		if !parsedToken.IsAdmin {
			slog.Warn("IsAdminUser Middleware: non admin user tried to access admin endpoint", slog.String("userID", parsedToken.Subject))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unauthorized access to admin endpoint"})
			return
		}
	}
}
