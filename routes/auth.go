package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/auth"
	"github.com/moriswala-burhanuddin/novaworks-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints plus cart-session
// minting. The auth group is rate limited per IP.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	limiter := middleware.NewRateLimiter()

	authGroup := r.Group("/auth")
	authGroup.Use(limiter.Limit())
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
		authGroup.POST("/logout", auth.Logout())
		authGroup.POST("/forgot-password", auth.ForgotPassword(db))
		authGroup.POST("/reset-password/:uid/:token", auth.ResetPassword(db))
		authGroup.GET("/verify-email/:uid/:token", auth.VerifyEmail(db))
	}

	// Guest cart-session token minting, outside the rate limited group:
	// called once per browser profile, not a credential.
	r.POST("/cart-session", auth.CreateCartSession(db))
}
