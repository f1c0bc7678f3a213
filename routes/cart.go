package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/cart"
	"github.com/moriswala-burhanuddin/novaworks-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the "/cart" endpoints. One surface serves both
// identities: JWT when present, X-Cart-Session otherwise.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.OptionalAuth, middleware.CartSession)
	{
		cartGroup.GET("", cartControllers.GetCart(db))                          // GET /cart
		cartGroup.POST("/items", cartControllers.AddToCart(db))                 // POST /cart/items
		cartGroup.PUT("/items/:item_id", cartControllers.UpdateItemQuantity(db)) // PUT /cart/items/:item_id
		cartGroup.DELETE("/items/:item_id", cartControllers.RemoveItem(db))     // DELETE /cart/items/:item_id
		cartGroup.DELETE("", cartControllers.ClearCart(db))                     // DELETE /cart
	}
}
