package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/user"
	"github.com/moriswala-burhanuddin/novaworks-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/ (session restore)
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/
	}
}
