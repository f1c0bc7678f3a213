package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/moriswala-burhanuddin/novaworks-api/controllers/admin"
	cartControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/cart"
	orderControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/order"
	productcontroller "github.com/moriswala-burhanuddin/novaworks-api/controllers/product"
	userControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/user"
	"github.com/moriswala-burhanuddin/novaworks-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT whose
// user carries is_superuser.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireSuperuser(db))
	{
		// ─────────── User & Role Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/staff", adminController.ListStaff(db))
		adminGroup.POST("/roles", adminController.SetUserRole(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))

			// websocket endpoint for real-time order updates
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		// ─────────── Cart Inspection ───────────
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
	}
}
