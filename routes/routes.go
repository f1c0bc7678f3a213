package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth + cart-session endpoints (rate limited)
	SetupAuthRoutes(r, db)

	// Catalog + reviews (optional auth for viewer pricing / is_owner)
	SetupCatalogRoutes(r, db)

	// Cart (guests via X-Cart-Session, users via JWT)
	SetupCartRoutes(r, db)

	// Profile (JWT-protected)
	SetupUserRoutes(r, db)

	// Orders + downloads (JWT-protected)
	SetupOrderRoutes(r, db)

	// Checkout + gateway webhook
	SetupPaymentRoutes(r, db)

	// Admin console (JWT + superuser)
	SetupAdminRoutes(r, db)
}
