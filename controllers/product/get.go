package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"gorm.io/gorm"
)

// viewer loads the requesting user when OptionalAuth put one in the
// context; guests get nil (USD display).
func viewer(c *gin.Context, db *gorm.DB) *models.User {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	var user models.User
	if err := db.First(&user, "id = ?", userIDVal).Error; err != nil {
		return nil
	}
	return &user
}

// GetProducts lists the catalog, optionally filtered by storefront section
// (category slug) and a search term.
// GET /products?category=mini-projects&search=arduino&sort_by=price_inr&order=asc
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categorySlug := c.Query("category")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		switch sortBy {
		case "created_at", "title", "price_inr", "price_usd":
		default:
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{}).Preload("Category")

		if categorySlug != "" {
			query = query.Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.slug = ?", categorySlug)
		}
		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		var products []models.Product
		if err := query.Order(sortBy + " " + sortOrder).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, NewProductViews(products, viewer(c, db)))
	}
}

// GetProductBySlug returns a single product with its category and
// viewer-priced serialization.
// GET /products/:slug
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product slug is required"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").Where("slug = ?", slug).First(&product).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		c.JSON(http.StatusOK, NewProductView(product, viewer(c, db)))
	}
}
