package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeEmail = "email"
	NotificationTypeSMS   = "sms"
	NotificationTypeInApp = "in_app"

	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// Notification is a queued confirmation message tied to a booking. Rows are
// written by the reservation commit and drained by the dispatcher, which
// moves them queued -> sent|failed.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"bookingId"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Type    string `gorm:"type:varchar(20);not null" json:"type"` // email, sms, in_app
	Subject string `json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`

	Status     string     `gorm:"type:varchar(20);not null;default:'queued'" json:"status"`
	ExternalID string     `json:"externalId"` // provider message id, if any
	SentAt     *time.Time `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
