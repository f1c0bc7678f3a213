package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Optional guest cart-session token; the guest cart is merged into the
	// user cart so nothing is lost by logging in mid-shopping.
	CartSession string `json:"cart_session"`
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if input.CartSession != "" {
			if err := mergeGuestCart(db, input.CartSession, user.ID); err != nil {
				// Losing a guest cart is annoying but must not block login.
				log.Printf("guest cart merge failed for user %s: %v", user.ID, err)
			}
		}

		token, err := IssueToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// mergeGuestCart moves the guest cart's items into the user's cart,
// combining quantities for products present in both, then drops the guest
// cart. The cart-session row itself stays valid (tokens never rotate).
func mergeGuestCart(db *gorm.DB, sessionToken, userID string) error {
	var guestCart models.Cart
	err := db.Preload("Items").Where("owner_id = ?", sessionToken).First(&guestCart).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var userCart models.Cart
		err := tx.Where("owner_id = ?", userID).First(&userCart).Error
		if err == gorm.ErrRecordNotFound {
			userCart = models.Cart{OwnerID: userID}
			if err := tx.Create(&userCart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, item := range guestCart.Items {
			var existing models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ?", userCart.CartID, item.ProductID).
				First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				moved := models.CartItem{
					CartID:        userCart.CartID,
					ProductID:     item.ProductID,
					Quantity:      item.Quantity,
					PriceAtAddINR: item.PriceAtAddINR,
					PriceAtAddUSD: item.PriceAtAddUSD,
					AddedAt:       time.Now(),
				}
				if err := tx.Create(&moved).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			existing.Quantity += item.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}

		return tx.Select("Items").Delete(&guestCart).Error
	})
}
