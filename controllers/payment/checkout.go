package paymentControllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moriswala-burhanuddin/novaworks-api/cache"
	cartControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/cart"
	orderControllers "github.com/moriswala-burhanuddin/novaworks-api/controllers/order"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"github.com/moriswala-burhanuddin/novaworks-api/pricing"
	"gorm.io/gorm"
)

type CheckoutInput struct {
	// Contact/address edits made on the checkout page. Persisted to the
	// profile before anything else; stale contact info must never reach
	// the gateway.
	FullName *string         `json:"full_name"`
	Phone    *string         `json:"phone"`
	Country  *string         `json:"country"`
	Address  *models.Address `json:"address"`
	// Accepted in the body as a fallback; X-Idempotency-Key wins.
	IdempotencyKey string `json:"idempotency_key"`
}

type VerifyInput struct {
	GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	Signature        string `json:"signature" binding:"required"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /checkout/create-order
//
// The one guarded sequence of the storefront: profile update, empty-cart
// guard, idempotency reservation, gateway order creation, local order
// persistence. Any failure before the gateway call aborts the attempt;
// after it, the gateway ref is already persisted with the pending order.
func CreateCheckoutOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		idemKey := c.GetHeader("X-Idempotency-Key")
		if idemKey == "" {
			idemKey = input.IdempotencyKey
		}

		// Step 1: persist edited contact fields. A failure here is fatal
		// to the attempt.
		updates := make(map[string]interface{})
		if input.FullName != nil {
			updates["full_name"] = *input.FullName
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Country != nil {
			updates["country"] = *input.Country
			user.Country = *input.Country
		}
		if input.Address != nil {
			updates["state"] = input.Address.State
			updates["city"] = input.Address.City
			updates["street"] = input.Address.Street
			updates["postal_code"] = input.Address.PostalCode
		}
		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}

		// Step 2: the cart must not be empty.
		var cart models.Cart
		err := db.Preload("Items.Product").Where("owner_id = ?", userID).First(&cart).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty", "code": "cart_empty"})
			return
		}

		// Step 3: a replayed idempotency key returns the original order
		// instead of charging twice.
		if idemKey != "" {
			var existing models.Order
			if err := db.Where("idempotency_key = ?", idemKey).First(&existing).Error; err == nil {
				c.JSON(http.StatusOK, checkoutResponse(&existing))
				return
			}
			reserved, err := cache.ReserveIdempotencyKey(c.Request.Context(), idemKey, 24*time.Hour)
			if err != nil {
				log.Printf("idempotency reservation failed for %s: %v", idemKey, err)
			} else if !reserved {
				// Key seen but no order persisted: a previous attempt died
				// before the gateway call. The unique column below is the
				// real guard, so fall through and retry.
				log.Printf("idempotency key %s replayed before order persisted", idemKey)
			}
		} else {
			idemKey = uuid.NewString()
		}

		// Step 4: totals in the user's display currency.
		view := cartControllers.BuildCartView(cart.Items, &user)
		total := view.TotalUSD
		if view.Currency == pricing.CurrencyINR {
			total = view.TotalINR
		}
		amountMinor := int64(math.Round(total * 100))

		orderRef := generateOrderRef()
		gatewayOrder, err := CreateGatewayOrder(amountMinor, view.Currency, orderRef)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		// Step 5: persist before the client ever sees the widget, so no
		// charge can happen against an unrecorded gateway ref.
		order := models.Order{
			UserID:         userID,
			TotalAmount:    total,
			Currency:       view.Currency,
			Status:         models.OrderStatusPending,
			PaymentStatus:  models.PaymentStatusPending,
			OrderRef:       orderRef,
			GatewayOrderID: gatewayOrder.ID,
			IdempotencyKey: idemKey,
			CreatedAt:      time.Now(),
		}
		for _, item := range cart.Items {
			base := item.Product.PriceUSD
			if view.Currency == pricing.CurrencyINR {
				base = item.Product.PriceINR
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Title:     item.Product.Title,
				Image:     item.Product.Image,
				UnitPrice: pricing.EffectivePrice(base, item.Product.DiscountPercentage),
				Quantity:  item.Quantity,
			})
		}

		if err := db.Create(&order).Error; err != nil {
			// Unique idempotency column: a concurrent double-submit lost
			// the race, serve the order that won.
			var existing models.Order
			if lookupErr := db.Where("idempotency_key = ?", idemKey).First(&existing).Error; lookupErr == nil {
				c.JSON(http.StatusOK, checkoutResponse(&existing))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, checkoutResponse(&order))
	}
}

func checkoutResponse(order *models.Order) gin.H {
	return gin.H{
		"order_id":         order.ID,
		"order_ref":        order.OrderRef,
		"gateway_order_id": order.GatewayOrderID,
		"amount":           int64(math.Round(order.TotalAmount * 100)),
		"currency":         order.Currency,
		"key_id":           GatewayKeyID(),
	}
}

// POST /checkout/verify
//
// The widget's success callback lands here with the three gateway-returned
// identifiers. A rejected signature is the one case where money may have
// moved without confirmed delivery: the order is parked in
// verification_failed for support (or the webhook) to reconcile, and the
// client gets an explicit status instead of an error page.
func VerifyPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input VerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("gateway_order_id = ? AND user_id = ?", input.GatewayOrderID, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusOK, gin.H{
				"status":       "paid",
				"order_id":     order.ID,
				"download_url": "/downloads/" + order.OrderRef,
			})
			return
		}

		if !VerifyPaymentSignature(input.GatewayOrderID, input.GatewayPaymentID, input.Signature) {
			if err := db.Model(&order).Updates(map[string]interface{}{
				"payment_status":     models.PaymentStatusVerificationFailed,
				"gateway_payment_id": input.GatewayPaymentID,
			}).Error; err != nil {
				log.Printf("failed to mark order %s verification_failed: %v", order.OrderRef, err)
			}
			c.JSON(http.StatusOK, gin.H{
				"status":   "verification_failed",
				"order_id": order.ID,
				"message":  "Payment received but could not be verified. Please contact support with your order reference.",
			})
			return
		}

		if err := markOrderPaid(db, &order, input.GatewayPaymentID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":       "paid",
			"order_id":     order.ID,
			"download_url": "/downloads/" + order.OrderRef,
		})
	}
}

// markOrderPaid confirms the order, clears the buyer's cart and pushes the
// order onto the admin live feed. Shared by the verify endpoint and the
// gateway webhook.
func markOrderPaid(db *gorm.DB, order *models.Order, gatewayPaymentID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Updates(map[string]interface{}{
			"status":             models.OrderStatusConfirmed,
			"payment_status":     models.PaymentStatusPaid,
			"gateway_payment_id": gatewayPaymentID,
		}).Error; err != nil {
			return err
		}

		var cart models.Cart
		err := tx.Where("owner_id = ?", order.UserID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return err
	}

	var full models.Order
	if err := db.Preload("Items").Preload("User").First(&full, order.ID).Error; err == nil {
		orderControllers.BroadcastOrder(full)
	}
	return nil
}
