package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moriswala-burhanuddin/novaworks-api/cache"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	Password string `json:"password" binding:"required,min=8"`
}

// POST /auth/forgot-password
//
// Answers 200 whether or not the email exists so the endpoint cannot be
// used to enumerate accounts.
func ForgotPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ForgotPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err == nil {
			token := uuid.NewString()
			if err := cache.SetAccountToken(c.Request.Context(), "reset", user.ID, token, time.Hour); err != nil {
				log.Printf("failed to store reset token for %s: %v", user.ID, err)
			} else {
				log.Printf("📧 reset-password link for %s: /reset-password/%s/%s", user.Email, user.ID, token)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset link has been sent"})
	}
}

// POST /auth/reset-password/:uid/:token
func ResetPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		token := c.Param("token")

		var input ResetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !cache.ConsumeAccountToken(c.Request.Context(), "reset", uid, token) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset link"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", uid).
			Update("password_hash", string(hash)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}
