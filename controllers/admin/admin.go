package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"gorm.io/gorm"
)

// ListStaff returns every account holding staff or superuser rights.
func ListStaff(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var staff []models.User
		if err := db.
			Select("id", "email", "username", "full_name", "is_staff", "is_superuser", "created_at").
			Where("is_staff = ? OR is_superuser = ?", true, true).
			Find(&staff).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
			return
		}
		c.JSON(http.StatusOK, staff)
	}
}

type roleRequest struct {
	Email       string `json:"email" binding:"required,email"`
	IsStaff     *bool  `json:"is_staff"`
	IsSuperuser *bool  `json:"is_superuser"`
}

// SetUserRole grants or revokes staff/superuser flags by email. Demotion
// takes effect on the target's next request, the admin gate re-reads the
// flag from the database.
func SetUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req roleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		updates := make(map[string]interface{})
		if req.IsStaff != nil {
			updates["is_staff"] = *req.IsStaff
		}
		if req.IsSuperuser != nil {
			updates["is_superuser"] = *req.IsSuperuser
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		if err := db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User role updated"})
	}
}
