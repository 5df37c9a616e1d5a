// controllers/timeslot.go
package controllers

import (
	"errors"
	"net/http"

	"salon-booking-backend/config"
	"salon-booking-backend/models"
	"salon-booking-backend/services"
	"salon-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTimeSlotInput defines the expected JSON structure for creating a slot
type CreateTimeSlotInput struct {
	StaffID     uuid.UUID `json:"staffId" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	Time        string    `json:"time" binding:"required"`
	IsAvailable *bool     `json:"isAvailable"`
}

// UpdateTimeSlotInput defines the expected JSON structure for updating a slot
type UpdateTimeSlotInput struct {
	StaffID     *uuid.UUID `json:"staffId"`
	Date        *string    `json:"date"`
	Time        *string    `json:"time"`
	IsAvailable *bool      `json:"isAvailable"`
}

// BulkCreateTimeSlotsInput is an inclusive date range crossed with a set of
// clock times
type BulkCreateTimeSlotsInput struct {
	StaffID   uuid.UUID `json:"staffId" binding:"required"`
	StartDate string    `json:"startDate" binding:"required"`
	EndDate   string    `json:"endDate" binding:"required"`
	Times     []string  `json:"times" binding:"required,min=1"`
}

// GetAvailability lists a staff member's open slots for one date, ascending
// by time
func GetAvailability(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Query("staff_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing staff_id")
		return
	}

	date := c.Query("date")
	if !utils.ValidateDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing date (expected YYYY-MM-DD)")
		return
	}

	svc := services.NewBookingService(config.DB)
	slots, err := svc.OpenSlots(staffUUID, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve time slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// GetTimeSlots retrieves all slots ordered by date and time, optionally
// filtered by staff member
func GetTimeSlots(c *gin.Context) {
	query := config.DB.Order("date asc").Order("time asc")

	if raw := c.Query("staff_id"); raw != "" {
		staffUUID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff_id format")
			return
		}
		query = query.Where("staff_id = ?", staffUUID)
	}

	var slots []models.TimeSlot
	if err := query.Find(&slots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve time slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// CreateTimeSlot adds a single slot
func CreateTimeSlot(c *gin.Context) {
	var input CreateTimeSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if !utils.ValidateClock(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Time must be HH:MM")
		return
	}

	slot := models.TimeSlot{
		StaffID:     input.StaffID,
		Date:        input.Date,
		Time:        input.Time,
		IsAvailable: true,
	}
	if input.IsAvailable != nil {
		slot.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Create(&slot).Error; err != nil {
		utils.RespondWithError(c, http.StatusConflict, "Failed to create time slot (duplicate slot?)")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// BulkCreateTimeSlots creates the dates x times cartesian product as
// available slots in one batch write
func BulkCreateTimeSlots(c *gin.Context) {
	var input BulkCreateTimeSlotsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := services.NewBookingService(config.DB)
	created, err := svc.CreateSlotBatch(input.StaffID, input.StartDate, input.EndDate, input.Times)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSlotBatch) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot batch: check dates and times")
		} else {
			utils.RespondWithError(c, http.StatusConflict, "Failed to create slots (overlapping batch?)")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Time slots created",
		"created": created,
	})
}

// UpdateTimeSlot updates an existing slot
func UpdateTimeSlot(c *gin.Context) {
	slotUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time slot ID format")
		return
	}

	var input UpdateTimeSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var slot models.TimeSlot
	if err := config.DB.First(&slot, "id = ?", slotUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Time slot not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.StaffID != nil {
		slot.StaffID = *input.StaffID
	}
	if input.Date != nil {
		if !utils.ValidateDate(*input.Date) {
			utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
			return
		}
		slot.Date = *input.Date
	}
	if input.Time != nil {
		if !utils.ValidateClock(*input.Time) {
			utils.RespondWithError(c, http.StatusBadRequest, "Time must be HH:MM")
			return
		}
		slot.Time = *input.Time
	}
	if input.IsAvailable != nil {
		slot.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Save(&slot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update time slot")
		return
	}

	c.JSON(http.StatusOK, slot)
}

// DeleteTimeSlot removes a slot
func DeleteTimeSlot(c *gin.Context) {
	slotUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time slot ID format")
		return
	}

	result := config.DB.Delete(&models.TimeSlot{}, "id = ?", slotUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete time slot")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Time slot not found")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Time slot deleted successfully")
}
