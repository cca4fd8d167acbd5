package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "accessplus/internal/pkg/jwt"
	"accessplus/internal/pkg/response"
)

// Auth validates the bearer token and puts user_id and role on the context.
// Websocket clients cannot set headers, so a ?token= query parameter is
// accepted as a fallback.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); h != "" {
			if !strings.HasPrefix(h, "Bearer ") {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
				c.Abort()
				return
			}
			tokenStr = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		} else {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		if claims.VenueID != "" {
			c.Set("venue_id", claims.VenueID)
		}

		c.Next()
	}
}
