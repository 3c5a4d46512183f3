package controllers

import (
	"errors"
	"net/http"
	"subtrackr-backend/config"
	"subtrackr-backend/models"
	"subtrackr-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSubscriptionInput defines the expected JSON structure for creating a subscription
type CreateSubscriptionInput struct {
	Name            string     `json:"name" binding:"required"`
	Cost            float64    `json:"cost" binding:"required,gt=0"`
	BillingCycle    string     `json:"billingCycle" binding:"required,oneof=monthly yearly custom"`
	CustomCycleDays *int       `json:"customCycleDays"`
	NextBillingDate *time.Time `json:"nextBillingDate"`
	Category        string     `json:"category"`
	Notes           string     `json:"notes"`
}

// UpdateSubscriptionInput defines the expected JSON structure for updating a subscription
type UpdateSubscriptionInput struct {
	Name            *string    `json:"name"`
	Cost            *float64   `json:"cost"`
	BillingCycle    *string    `json:"billingCycle" binding:"omitempty,oneof=monthly yearly custom"`
	CustomCycleDays *int       `json:"customCycleDays"`
	NextBillingDate *time.Time `json:"nextBillingDate"`
	Category        *string    `json:"category"`
	Notes           *string    `json:"notes"`
	IsActive        *bool      `json:"isActive"`
}

// CreateSubscription creates a new subscription for the authenticated user
func CreateSubscription(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateBillingCycle(input.BillingCycle, input.CustomCycleDays) {
		utils.RespondWithError(c, http.StatusBadRequest, "Custom billing cycle requires a positive customCycleDays")
		return
	}

	subscription := models.Subscription{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            input.Name,
		Cost:            input.Cost,
		BillingCycle:    input.BillingCycle,
		CustomCycleDays: input.CustomCycleDays,
		NextBillingDate: input.NextBillingDate,
		Notes:           input.Notes,
		IsActive:        true,
	}

	if input.Category != "" {
		subscription.Category = input.Category
	}

	if err := config.DB.Create(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create subscription")
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// GetSubscriptions retrieves all subscriptions for the authenticated user
func GetSubscriptions(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var subscriptions []models.Subscription
	if err := config.DB.Where("user_id = ?", userUUID).Find(&subscriptions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve subscriptions")
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// GetSubscription retrieves a specific subscription by ID
func GetSubscription(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	subscriptionID := c.Param("id")
	subscriptionUUID, err := uuid.Parse(subscriptionID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	var subscription models.Subscription
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, subscriptionUUID).
		First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// UpdateSubscription updates an existing subscription
func UpdateSubscription(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	subscriptionID := c.Param("id")
	subscriptionUUID, err := uuid.Parse(subscriptionID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	var input UpdateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing subscription
	var subscription models.Subscription
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, subscriptionUUID).
		First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		subscription.Name = *input.Name
	}
	if input.Cost != nil {
		if *input.Cost <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Cost must be greater than zero")
			return
		}
		subscription.Cost = *input.Cost
	}
	if input.BillingCycle != nil {
		customDays := subscription.CustomCycleDays
		if input.CustomCycleDays != nil {
			customDays = input.CustomCycleDays
		}
		if !utils.ValidateBillingCycle(*input.BillingCycle, customDays) {
			utils.RespondWithError(c, http.StatusBadRequest, "Custom billing cycle requires a positive customCycleDays")
			return
		}
		subscription.BillingCycle = *input.BillingCycle
	}
	if input.CustomCycleDays != nil {
		subscription.CustomCycleDays = input.CustomCycleDays
	}
	if input.NextBillingDate != nil {
		subscription.NextBillingDate = input.NextBillingDate
	}
	if input.Category != nil {
		subscription.Category = *input.Category
	}
	if input.Notes != nil {
		subscription.Notes = *input.Notes
	}
	if input.IsActive != nil {
		subscription.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update subscription")
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// DeleteSubscription soft deletes a subscription
func DeleteSubscription(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	subscriptionID := c.Param("id")
	subscriptionUUID, err := uuid.Parse(subscriptionID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, subscriptionUUID).
		Delete(&models.Subscription{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete subscription")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully"})
}
