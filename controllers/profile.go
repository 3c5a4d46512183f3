package controllers

import (
	"net/http"
	"subtrackr-backend/config"
	"subtrackr-backend/models"
	"subtrackr-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	EmailReminders *bool   `json:"emailReminders"`
	SMSReminders   *bool   `json:"smsReminders"`
}

func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":           user.Name,
		"email":          user.Email,
		"phone":          user.Phone,
		"emailReminders": user.EmailReminders,
		"smsReminders":   user.SMSReminders,
	})
}

func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		user.Phone = *input.Phone
	}
	if input.EmailReminders != nil {
		user.EmailReminders = *input.EmailReminders
	}
	if input.SMSReminders != nil {
		if *input.SMSReminders && user.Phone == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "SMS reminders require a phone number on file")
			return
		}
		user.SMSReminders = *input.SMSReminders
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
