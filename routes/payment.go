package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/payment"
	"github.com/moriswala-burhanuddin/novaworks-api/middleware"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.ValidateToken)
	{
		// Gateway order creation; idempotent via X-Idempotency-Key
		checkout.POST("/create-order", paymentControllers.CreateCheckoutOrder(db))

		// Widget success callback verification
		checkout.POST("/verify", paymentControllers.VerifyPayment(db))
	}

	// Server-to-server notifications: middleware handles signature
	// verification (skipped in sandbox mode)
	r.POST("/payment/webhook",
		middleware.GatewayWebhookAuth(),
		paymentControllers.GatewayWebhookHandler(db),
	)
}
