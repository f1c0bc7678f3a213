package paymentControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"gorm.io/gorm"
)

type webhookRequest struct {
	Event   string `json:"event"`
	Payload struct {
		GatewayOrderID   string `json:"gateway_order_id"`
		GatewayPaymentID string `json:"gateway_payment_id"`
	} `json:"payload"`
}

// POST /payment/webhook
//
// Server-to-server notification from the gateway, authenticated by
// middleware.GatewayWebhookAuth. This path reconciles orders the client
// callback could not confirm (tab closed mid-verify, transient backend
// blip after a real charge), so a captured payment is honored even when
// the order sits in verification_failed.
func GatewayWebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req webhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}

		log.Printf("gateway webhook: event=%s order=%s", req.Event, req.Payload.GatewayOrderID)

		if req.Event != "payment.captured" {
			c.JSON(http.StatusOK, gin.H{"message": "event ignored"})
			return
		}
		if req.Payload.GatewayOrderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing gateway_order_id"})
			return
		}

		var order models.Order
		if err := db.Where("gateway_order_id = ?", req.Payload.GatewayOrderID).First(&order).Error; err != nil {
			// The gateway retries webhooks; answering 404 for an order we
			// never created stops the retries.
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusOK, gin.H{"message": "already processed"})
			return
		}

		if err := markOrderPaid(db, &order, req.Payload.GatewayPaymentID); err != nil {
			log.Printf("webhook failed to confirm order %s: %v", order.OrderRef, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "order confirmed"})
	}
}
