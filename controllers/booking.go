// controllers/booking.go
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
)

// CreateBookingInput carries a completed wizard selection in one request
type CreateBookingInput struct {
	ServiceID     uuid.UUID `json:"serviceId" binding:"required"`
	StaffID       uuid.UUID `json:"staffId" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	Time          string    `json:"time" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerPhone string    `json:"customerPhone" binding:"required"`
	CustomerEmail string    `json:"customerEmail" binding:"required,email"`
	Notes         string    `json:"notes"`
}

// UpdateBookingStatusInput restricts admin transitions to the two legal
// targets
type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}

// CreateBooking replays the submitted selection through the booking wizard,
// so every step rule (active service, qualified staff, valid date/time,
// required contact fields) is enforced server-side, then commits the
// reservation.
func CreateBooking(c *gin.Context) {
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

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	svc := services.NewBookingService(config.DB)

	if _, err := svc.ActiveService(input.ServiceID); err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Selected service is not available")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if _, err := svc.ActiveStaff(input.StaffID); err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Selected staff member is not available")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	qualified, err := svc.StaffOffersService(input.StaffID, input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !qualified {
		utils.RespondWithError(c, http.StatusBadRequest, "Selected staff member does not offer this service")
		return
	}

	wizard := services.NewBookingWizard()
	steps := []error{
		wizard.ChooseService(input.ServiceID),
		wizard.ChooseStaff(input.StaffID),
		wizard.ChooseDate(input.Date),
		wizard.ChooseTime(input.Time),
		wizard.SubmitDetails(input.CustomerName, input.CustomerPhone, input.CustomerEmail, input.Notes),
	}
	for _, stepErr := range steps {
		if stepErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, stepErr.Error())
			return
		}
	}
	if !wizard.ReadyToConfirm() {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking selection is incomplete")
		return
	}

	booking, err := svc.CommitReservation(userUUID, wizard.Selection())
	if err != nil {
		if errors.Is(err, services.ErrSlotUnavailable) {
			utils.RespondWithError(c, http.StatusConflict, "Slot no longer available")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings lists the authenticated user's bookings, newest date first
func GetMyBookings(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var bookings []models.Booking
	err := config.DB.Preload("Service").
		Where("user_id = ?", userID).
		Order("booking_date desc").
		Order("booking_time desc").
		Find(&bookings).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookings lists all bookings for the admin console, newest first
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	err := config.DB.Preload("Service").Preload("Staff").
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus applies pending->confirmed or
// (pending|confirmed)->cancelled
func UpdateBookingStatus(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := services.NewBookingService(config.DB)
	booking, err := svc.TransitionBookingStatus(bookingUUID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.RespondWithError(c, http.StatusConflict, "Booking cannot move to the requested status")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking status")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}
