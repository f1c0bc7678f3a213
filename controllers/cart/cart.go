package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"github.com/moriswala-burhanuddin/novaworks-api/pricing"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// resolveOwner picks the cart identity for this request: the authenticated
// user id, or the guest cart-session token. The session row is created
// lazily on first cart access (tokens may be client-generated).
func resolveOwner(c *gin.Context, db *gorm.DB) (string, *models.User, bool) {
	if userIDVal, exists := c.Get("user_id"); exists {
		userID := userIDVal.(string)
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return userID, nil, true
		}
		return userID, &user, true
	}

	if tokenVal, exists := c.Get("cart_session"); exists {
		token := tokenVal.(string)
		db.FirstOrCreate(&models.CartSession{}, models.CartSession{Token: token})
		return token, nil, true
	}

	return "", nil, false
}

func loadCartView(db *gorm.DB, ownerID string, user *models.User) (CartView, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").Where("owner_id = ?", ownerID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return BuildCartView(nil, user), nil
	}
	if err != nil {
		return CartView{}, err
	}
	return BuildCartView(cart.Items, user), nil
}

// GET /cart
//
// Unknown identities get an empty cart, not an error: this endpoint is
// polled proactively on page mounts and must stay quiet.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, user, ok := resolveOwner(c, db)
		if !ok {
			c.JSON(http.StatusOK, BuildCartView(nil, nil))
			return
		}

		view, err := loadCartView(db, ownerID, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// POST /cart/items
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, user, ok := resolveOwner(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A cart session or login is required"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fetch product from DB
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		var cart models.Cart
		if err := db.Where("owner_id = ?", ownerID).First(&cart).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
			cart = models.Cart{OwnerID: ownerID}
			if err := db.Create(&cart).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
				return
			}
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
				return
			}
			newItem := models.CartItem{
				CartID:    cart.CartID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				// Display-only snapshot; totals keep using live prices.
				PriceAtAddINR: pricing.EffectivePrice(product.PriceINR, product.DiscountPercentage),
				PriceAtAddUSD: pricing.EffectivePrice(product.PriceUSD, product.DiscountPercentage),
				AddedAt:       time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			respondWithCart(c, db, ownerID, user, http.StatusCreated)
			return
		}

		// Adding an already-carted product accumulates quantity.
		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		respondWithCart(c, db, ownerID, user, http.StatusOK)
	}
}

// PUT /cart/items/:item_id
func UpdateItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		// Quantity can never pass below 1; removal is an explicit delete.
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1; remove the item instead"})
			return
		}

		ownerID, user, ok := resolveOwner(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A cart session or login is required"})
			return
		}

		var cart models.Cart
		if err := db.Where("owner_id = ?", ownerID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND cart_id = ?", c.Param("item_id"), cart.CartID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		respondWithCart(c, db, ownerID, user, http.StatusOK)
	}
}

// DELETE /cart/items/:item_id
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, user, ok := resolveOwner(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A cart session or login is required"})
			return
		}

		var cart models.Cart
		if err := db.Where("owner_id = ?", ownerID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Where("id = ? AND cart_id = ?", c.Param("item_id"), cart.CartID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		respondWithCart(c, db, ownerID, user, http.StatusOK)
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, user, ok := resolveOwner(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A cart session or login is required"})
			return
		}

		var cart models.Cart
		if err := db.Where("owner_id = ?", ownerID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, BuildCartView(nil, user))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		respondWithCart(c, db, ownerID, user, http.StatusOK)
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		view, err := loadCartView(db, userID, &user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func respondWithCart(c *gin.Context, db *gorm.DB, ownerID string, user *models.User, status int) {
	view, err := loadCartView(db, ownerID, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	c.JSON(status, view)
}
