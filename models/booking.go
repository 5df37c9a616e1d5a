package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed" // defined in the schema, never set by the API
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	StaffID   uuid.UUID `gorm:"type:uuid;index;not null" json:"staffId"`

	BookingDate string `gorm:"type:varchar(10);not null" json:"bookingDate"` // YYYY-MM-DD
	BookingTime string `gorm:"type:varchar(5);not null" json:"bookingTime"`  // HH:MM

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`
	CustomerEmail string `gorm:"not null" json:"customerEmail"`
	Notes         string `json:"notes"`

	Status string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Staff   Staff   `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
