// controllers/reminder.go
package controllers

import (
	"errors"
	"net/http"

	"subtrackr-backend/config"
	"subtrackr-backend/models"
	"subtrackr-backend/services"
	"subtrackr-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReminderController exposes the operational surface of the reminder
// engine: a manual trigger, the last-cycle marker, and the delivery log.
type ReminderController struct {
	Service *services.ReminderService
}

// RunNow synchronously runs one scan-and-dispatch cycle. Intended for
// operational verification; it reports cycle completion, not individual
// delivery outcomes.
func (rc *ReminderController) RunNow(c *gin.Context) {
	summary, err := rc.Service.RunCycle("manual")
	if err != nil {
		if errors.Is(err, services.ErrCycleInProgress) {
			c.JSON(http.StatusConflict, gin.H{"message": "A reminder cycle is already running"})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Reminder cycle failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reminder cycle completed",
		"cycle":   summary,
	})
}

// Status returns the summary of the most recently completed cycle.
func (rc *ReminderController) Status(c *gin.Context) {
	last := rc.Service.LastCycle()
	if last == nil {
		c.JSON(http.StatusOK, gin.H{"lastCycle": nil, "message": "No reminder cycle has run yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lastCycle": last})
}

// GetLogs returns recent reminder delivery attempts for the caller.
func (rc *ReminderController) GetLogs(c *gin.Context) {
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

	var logs []models.ReminderLog
	if err := config.DB.Where("user_id = ?", userUUID).
		Order("sent_at DESC").Limit(50).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
