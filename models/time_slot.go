package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeSlot is one bookable unit for a staff member. Date and Time are kept
// as plain "YYYY-MM-DD" / "HH:MM" strings, matching the wire format the
// booking flow works with. A slot holding a non-null BookingID must have
// IsAvailable = false.
type TimeSlot struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	StaffID     uuid.UUID  `gorm:"type:uuid;index;not null;uniqueIndex:idx_staff_date_time,priority:1" json:"staffId"`
	Date        string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_staff_date_time,priority:2" json:"date"`
	Time        string     `gorm:"type:varchar(5);not null;uniqueIndex:idx_staff_date_time,priority:3" json:"time"`
	IsAvailable bool       `gorm:"default:true" json:"isAvailable"`
	BookingID   *uuid.UUID `gorm:"type:uuid" json:"bookingId"`

	Staff Staff `gorm:"foreignKey:StaffID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

func (t *TimeSlot) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
