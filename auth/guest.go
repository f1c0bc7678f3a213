package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"gorm.io/gorm"
)

// POST /cart-session
//
// Mints the opaque token a guest presents in X-Cart-Session to correlate
// their cart. Clients call this once, persist the token in durable storage
// and keep presenting it forever; tokens are never rotated server-side.
func CreateCartSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.CartSession{Token: NewSessionToken()}

		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart session"})
			return
		}

		c.JSON(http.StatusCreated, session)
	}
}
