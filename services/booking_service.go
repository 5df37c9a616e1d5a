// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"salon-booking-backend/models"
	"salon-booking-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSlotUnavailable   = errors.New("slot no longer available")
	ErrServiceNotFound   = errors.New("service not found or inactive")
	ErrStaffNotFound     = errors.New("staff member not found or inactive")
	ErrStaffNotQualified = errors.New("staff member does not offer this service")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidSlotBatch  = errors.New("invalid slot batch parameters")
)

// BookingService owns the availability and reservation logic: catalog reads,
// staff/slot filtering, the transactional reservation commit and the admin
// status transitions.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// ActiveServices returns bookable services ordered by name.
func (s *BookingService) ActiveServices() ([]models.Service, error) {
	var services []models.Service
	err := s.db.Where("is_active = ?", true).Order("name asc").Find(&services).Error
	return services, err
}

// ActiveService fetches one service, rejecting inactive ones.
func (s *BookingService) ActiveService(serviceID uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := s.db.Where("id = ? AND is_active = ?", serviceID, true).First(&service).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// StaffForService returns active staff, restricted to those associated with
// the given service when one is supplied.
func (s *BookingService) StaffForService(serviceID *uuid.UUID) ([]models.Staff, error) {
	var staff []models.Staff
	query := s.db.Where("staff.is_active = ?", true).Order("staff.name asc")
	if serviceID != nil {
		query = query.
			Joins("JOIN staff_services ON staff_services.staff_id = staff.id").
			Where("staff_services.service_id = ?", *serviceID)
	}
	err := query.Find(&staff).Error
	return staff, err
}

// StaffOffersService checks the staff_services association for one pair.
func (s *BookingService) StaffOffersService(staffID, serviceID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.StaffService{}).
		Where("staff_id = ? AND service_id = ?", staffID, serviceID).
		Count(&count).Error
	return count > 0, err
}

// ActiveStaff fetches one staff member, rejecting inactive ones.
func (s *BookingService) ActiveStaff(staffID uuid.UUID) (*models.Staff, error) {
	var staff models.Staff
	err := s.db.Where("id = ? AND is_active = ?", staffID, true).First(&staff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// OpenSlots returns a staff member's unbooked, available slots for a date,
// ascending by time.
func (s *BookingService) OpenSlots(staffID uuid.UUID, date string) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	err := s.db.
		Where("staff_id = ? AND date = ? AND is_available = ? AND booking_id IS NULL", staffID, date, true).
		Order("time asc").
		Find(&slots).Error
	return slots, err
}

// CommitReservation turns a completed wizard selection into a pending booking
// and claims its time slot, all inside one transaction: the booking row
// exists if and only if the slot was flipped to unavailable. The slot update
// carries an "is_available = true" condition so that of two racing commits
// exactly one wins; the loser gets ErrSlotUnavailable and writes nothing.
// A queued confirmation notification is written in the same transaction.
func (s *BookingService) CommitReservation(userID uuid.UUID, sel BookingSelection) (*models.Booking, error) {
	booking := models.Booking{
		UserID:        userID,
		ServiceID:     sel.ServiceID,
		StaffID:       sel.StaffID,
		BookingDate:   sel.Date,
		BookingTime:   sel.Time,
		CustomerName:  sel.CustomerName,
		CustomerPhone: sel.CustomerPhone,
		CustomerEmail: sel.CustomerEmail,
		Notes:         sel.Notes,
		Status:        models.BookingStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var slot models.TimeSlot
		err := tx.
			Where("staff_id = ? AND date = ? AND time = ? AND is_available = ? AND booking_id IS NULL",
				sel.StaffID, sel.Date, sel.Time, true).
			First(&slot).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotUnavailable
		}
		if err != nil {
			return err
		}

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		res := tx.Model(&models.TimeSlot{}).
			Where("id = ? AND is_available = ?", slot.ID, true).
			Updates(map[string]interface{}{
				"is_available": false,
				"booking_id":   booking.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSlotUnavailable
		}

		notification := models.Notification{
			BookingID: booking.ID,
			UserID:    userID,
			Type:      models.NotificationTypeEmail,
			Subject:   "Your booking request was received",
			Body: fmt.Sprintf("Hi %s, we received your booking for %s at %s. We will confirm it shortly.",
				sel.CustomerName, sel.Date, sel.Time),
			Status: models.NotificationStatusQueued,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// TransitionBookingStatus applies the admin status rules: pending may become
// confirmed or cancelled, confirmed may become cancelled. Nothing moves back
// to pending and nothing is marked completed through the API. Cancelling a
// booking does not reopen its time slot.
func (s *BookingService) TransitionBookingStatus(bookingID uuid.UUID, next string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.First(&booking, "id = ?", bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	allowed := false
	switch next {
	case models.BookingStatusConfirmed:
		allowed = booking.Status == models.BookingStatusPending
	case models.BookingStatusCancelled:
		allowed = booking.Status == models.BookingStatusPending ||
			booking.Status == models.BookingStatusConfirmed
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	if err := s.db.Model(&booking).Update("status", next).Error; err != nil {
		return nil, err
	}
	booking.Status = next
	return &booking, nil
}

// CreateSlotBatch inserts the cartesian product of dates in [startDate,
// endDate] and the given clock times as available slots for one staff member
// in a single batch write, returning how many rows were created.
func (s *BookingService) CreateSlotBatch(staffID uuid.UUID, startDate, endDate string, times []string) (int, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, ErrInvalidSlotBatch
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, ErrInvalidSlotBatch
	}
	if end.Before(start) || len(times) == 0 {
		return 0, ErrInvalidSlotBatch
	}
	for _, clock := range times {
		if !utils.ValidateClock(clock) {
			return 0, ErrInvalidSlotBatch
		}
	}

	var slots []models.TimeSlot
	for _, date := range utils.DateRange(start, end) {
		for _, clock := range times {
			slots = append(slots, models.TimeSlot{
				StaffID:     staffID,
				Date:        date,
				Time:        clock,
				IsAvailable: true,
			})
		}
	}

	if err := s.db.Create(&slots).Error; err != nil {
		return 0, err
	}
	return len(slots), nil
}
