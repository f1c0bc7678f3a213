package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/order"
	"github.com/moriswala-burhanuddin/novaworks-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// The caller's own orders
		orders.GET("", orderControllers.GetMyOrdersHandler(db))

		// Single order, owner or superuser
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}

	// Secure downloads behind a paid order
	r.GET("/downloads/:orderID", middleware.ValidateToken, orderControllers.GetOrderDownloads(db))
}
