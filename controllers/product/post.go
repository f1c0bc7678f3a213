package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Slug               string  `json:"slug" binding:"required"`
	Title              string  `json:"title" binding:"required"`
	Description        string  `json:"description"`
	PriceINR           float64 `json:"price_inr" binding:"required"`
	PriceUSD           float64 `json:"price_usd" binding:"required"`
	DiscountPercentage int     `json:"discount_percentage" binding:"min=0,max=100"`
	Image              string  `json:"image"`
	DownloadURL        string  `json:"download_url"`
	CategoryID         uint    `json:"category_id" binding:"required"`
}

// CreateProduct creates a new catalog entry. Admin only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		product := models.Product{
			Slug:               input.Slug,
			Title:              input.Title,
			Description:        input.Description,
			PriceINR:           input.PriceINR,
			PriceUSD:           input.PriceUSD,
			DiscountPercentage: input.DiscountPercentage,
			Image:              input.Image,
			DownloadURL:        input.DownloadURL,
			CategoryID:         input.CategoryID,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
