package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"not null" json:"role"` // e.g. "Senior Stylist"
	Bio          string    `json:"bio"`
	ImageURL     string    `json:"imageUrl"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	WorkingHours JSONB     `gorm:"type:jsonb;default:'{}'" json:"workingHours"`

	Services []Service `gorm:"many2many:staff_services;" json:"services,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Staff) TableName() string {
	return "staff"
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// StaffService is the staff <-> service association row. GORM manages it
// through the many2many relation; it is declared so the join can be
// queried and toggled directly by the admin console.
type StaffService struct {
	StaffID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"staffId"`
	ServiceID uuid.UUID `gorm:"type:uuid;primaryKey" json:"serviceId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (StaffService) TableName() string {
	return "staff_services"
}
