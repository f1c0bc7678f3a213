package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/moriswala-burhanuddin/novaworks-api/controllers/product"
	reviewControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/review"
	"github.com/moriswala-burhanuddin/novaworks-api/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public catalog and review endpoints.
// OptionalAuth lets the handlers price for the viewer's currency and mark
// review ownership.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	products.Use(middleware.OptionalAuth)
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:slug", productcontroller.GetProductBySlug(db))

		products.GET("/:slug/reviews", reviewControllers.GetProductReviews(db))
		products.POST("/:slug/reviews", middleware.ValidateToken, reviewControllers.CreateOrUpdateReview(db))
	}

	r.DELETE("/reviews/:id", middleware.ValidateToken, reviewControllers.DeleteReview(db))

	r.GET("/categories", productcontroller.GetAllCategories(db))
}
