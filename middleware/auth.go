package middleware

import (
	"net/http"
	"strings"

	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
)

// BearerAuthMiddleware validates the bearer token and stashes the caller's
// email plus the raw token in the context. The raw token is forwarded on
// every upstream call; the desk never mints credentials of its own.
func BearerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("actorEmail", email)
		c.Set("authToken", tokenString)
		c.Next()
	}
}

// ActorEmail returns the authenticated caller's email from the context.
func ActorEmail(c *gin.Context) string {
	email, _ := c.Get("actorEmail")
	s, _ := email.(string)
	return s
}

// AuthToken returns the raw bearer token from the context.
func AuthToken(c *gin.Context) string {
	token, _ := c.Get("authToken")
	s, _ := token.(string)
	return s
}
