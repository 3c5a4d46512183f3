package controllers

import (
	"fmt"
	"net/http"
	"subtrackr-backend/config"
	"subtrackr-backend/models"
	"subtrackr-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardOverview struct {
	ActiveSubscriptions int               `json:"activeSubscriptions"`
	MonthlySpend        float64           `json:"monthlySpend"`
	YearlySpend         float64           `json:"yearlySpend"`
	UpcomingRenewals    []UpcomingRenewal `json:"upcomingRenewals"`
}

type UpcomingRenewal struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
	Date string  `json:"date"` // e.g. "Today", "Tomorrow", "3 days"
}

// MonthlyCost normalizes a subscription's cost to a per-month figure.
func MonthlyCost(sub models.Subscription) float64 {
	switch sub.BillingCycle {
	case models.CycleYearly:
		return sub.Cost / 12
	case models.CycleCustom:
		if sub.CustomCycleDays != nil && *sub.CustomCycleDays > 0 {
			return sub.Cost * 30 / float64(*sub.CustomCycleDays)
		}
		return sub.Cost
	default:
		return sub.Cost
	}
}

func GetDashboardOverview(c *gin.Context) {
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
	if err := config.DB.Where("user_id = ? AND is_active = ?", userUUID, true).
		Find(&subscriptions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve subscriptions")
		return
	}

	overview := DashboardOverview{
		ActiveSubscriptions: len(subscriptions),
		UpcomingRenewals:    []UpcomingRenewal{},
	}

	now := time.Now().UTC()
	for _, sub := range subscriptions {
		monthly := MonthlyCost(sub)
		overview.MonthlySpend += monthly
		overview.YearlySpend += monthly * 12

		if sub.NextBillingDate == nil {
			continue
		}
		daysLeft := utils.DaysBetweenUTC(now, *sub.NextBillingDate)
		if daysLeft < 0 || daysLeft > 7 {
			continue
		}
		overview.UpcomingRenewals = append(overview.UpcomingRenewals, UpcomingRenewal{
			Name: sub.Name,
			Cost: sub.Cost,
			Date: renewalLabel(daysLeft),
		})
	}

	c.JSON(http.StatusOK, overview)
}

func renewalLabel(daysLeft int) string {
	switch daysLeft {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", daysLeft)
	}
}
