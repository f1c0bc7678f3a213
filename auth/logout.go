package auth

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/cache"
)

// POST /auth/logout
//
// Logout is best-effort on purpose: the client clears its local token no
// matter what we answer, so this handler always returns 200. The only work
// here is blacklisting the token's jti for its remaining lifetime.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
			return
		}

		claims, err := ParseToken(tokenString)
		if err != nil {
			// Already invalid, nothing to blacklist.
			c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
			return
		}

		ttl := time.Until(claims.ExpiresAt.Time)
		if err := cache.DenyToken(c.Request.Context(), claims.ID, ttl); err != nil {
			log.Printf("failed to blacklist token %s: %v", claims.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
