package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/auth"
	"github.com/moriswala-burhanuddin/novaworks-api/cache"
)

func ValidateToken(c *gin.Context) {
	// Get the token from the header
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	// A blacklisted jti means the user logged out; the session is void.
	if cache.IsTokenDenied(c.Request.Context(), claims.ID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer valid"})
		c.Abort()
		return
	}

	c.Set("user_id", claims.Subject)
	c.Next()
}

// OptionalAuth populates user_id when a valid token is present and proceeds
// regardless. Used by endpoints that serve both guests and users (catalog,
// cart, review listings).
func OptionalAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err == nil && !cache.IsTokenDenied(c.Request.Context(), claims.ID) {
			c.Set("user_id", claims.Subject)
		}
	}
	c.Next()
}
