// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"salon-booking-backend/config"
	"salon-booking-backend/models"
	"salon-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`
	TodaysBookings    int64 `json:"todaysBookings"`
	OpenSlots         int64 `json:"openSlots"`
	ActiveServices    int64 `json:"activeServices"`
	ActiveStaff       int64 `json:"activeStaff"`

	RecentBookings []models.Booking `json:"recentBookings"`
}

// GetDashboardOverview summarizes the booking pipeline for the admin console
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	db := config.DB

	if err := db.Model(&models.Booking{}).Count(&overview.TotalBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).
		Count(&overview.PendingBookings)
	db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusConfirmed).
		Count(&overview.ConfirmedBookings)
	db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusCancelled).
		Count(&overview.CancelledBookings)

	today := time.Now().Format("2006-01-02")
	db.Model(&models.Booking{}).
		Where("booking_date = ? AND status <> ?", today, models.BookingStatusCancelled).
		Count(&overview.TodaysBookings)

	db.Model(&models.TimeSlot{}).
		Where("is_available = ? AND booking_id IS NULL AND date >= ?", true, today).
		Count(&overview.OpenSlots)

	db.Model(&models.Service{}).Where("is_active = ?", true).Count(&overview.ActiveServices)
	db.Model(&models.Staff{}).Where("is_active = ?", true).Count(&overview.ActiveStaff)

	db.Preload("Service").Preload("Staff").
		Order("created_at desc").
		Limit(5).
		Find(&overview.RecentBookings)

	c.JSON(http.StatusOK, overview)
}
