package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"gorm.io/gorm"
)

type downloadItem struct {
	ProductID   uint   `json:"product_id"`
	Title       string `json:"title"`
	DownloadURL string `json:"download_url"`
}

// GET /downloads/:orderID
//
// The secure download page behind a completed checkout. Download URLs are
// stripped from every other product serialization and only released here,
// to the order's owner, once the payment is verified.
func GetOrderDownloads(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		id := c.Param("orderID")
		var order models.Order
		if err := db.
			Preload("Items.Product").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		if order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this order"})
			return
		}
		if order.PaymentStatus != models.PaymentStatusPaid {
			c.JSON(http.StatusForbidden, gin.H{"error": "Downloads unlock after payment is verified"})
			return
		}

		downloads := make([]downloadItem, 0, len(order.Items))
		for _, item := range order.Items {
			downloads = append(downloads, downloadItem{
				ProductID:   item.ProductID,
				Title:       item.Title,
				DownloadURL: item.Product.DownloadURL,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"order_ref": order.OrderRef,
			"items":     downloads,
		})
	}
}
