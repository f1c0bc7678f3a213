package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"gorm.io/gorm"
)

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewView carries a server-computed is_owner flag so clients never have
// to guess ownership from display names or emails.
type ReviewView struct {
	models.Review
	IsOwner bool `json:"is_owner"`
}

func productBySlug(db *gorm.DB, slug string) (*models.Product, error) {
	var product models.Product
	if err := db.Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GET /products/:slug/reviews — OptionalAuth so guests can read too.
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := productBySlug(db, c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").Where("product_id = ?", product.ID).
			Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		viewerID, _ := c.Get("user_id")
		views := make([]ReviewView, 0, len(reviews))
		for _, r := range reviews {
			views = append(views, ReviewView{Review: r, IsOwner: viewerID == r.UserID})
		}
		c.JSON(http.StatusOK, views)
	}
}

// POST /products/:slug/reviews — one review per user per product; posting
// again replaces the existing one.
func CreateOrUpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := productBySlug(db, c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var review models.Review
		err = db.Where("product_id = ? AND user_id = ?", product.ID, userID).First(&review).Error
		if err == gorm.ErrRecordNotFound {
			review = models.Review{
				ProductID: product.ID,
				UserID:    userID,
				Rating:    input.Rating,
				Comment:   input.Comment,
			}
			if err := db.Create(&review).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
				return
			}
			c.JSON(http.StatusCreated, ReviewView{Review: review, IsOwner: true})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			return
		}

		review.Rating = input.Rating
		review.Comment = input.Comment
		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
		c.JSON(http.StatusOK, ReviewView{Review: review, IsOwner: true})
	}
}

// DELETE /reviews/:id — own review, or any review for superusers.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var review models.Review
		if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		if review.UserID != userID {
			var user models.User
			if err := db.First(&user, "id = ?", userID).Error; err != nil || !user.IsSuperuser {
				c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own review"})
				return
			}
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
