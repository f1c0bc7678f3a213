package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Slug               *string  `json:"slug"`
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	PriceINR           *float64 `json:"price_inr"`
	PriceUSD           *float64 `json:"price_usd"`
	DiscountPercentage *int     `json:"discount_percentage"`
	Image              *string  `json:"image"`
	DownloadURL        *string  `json:"download_url"`
	CategoryID         *uint    `json:"category_id"`
}

// UpdateProduct partially updates a product. Admin only.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.DiscountPercentage != nil && (*input.DiscountPercentage < 0 || *input.DiscountPercentage > 100) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount_percentage must be between 0 and 100"})
			return
		}

		updates := make(map[string]interface{})
		if input.Slug != nil {
			updates["slug"] = *input.Slug
		}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.PriceINR != nil {
			updates["price_inr"] = *input.PriceINR
		}
		if input.PriceUSD != nil {
			updates["price_usd"] = *input.PriceUSD
		}
		if input.DiscountPercentage != nil {
			updates["discount_percentage"] = *input.DiscountPercentage
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.DownloadURL != nil {
			updates["download_url"] = *input.DownloadURL
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			updates["category_id"] = *input.CategoryID
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
