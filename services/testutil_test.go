package services

import (
	"fmt"
	"testing"

	"salon-booking-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database and migrates the full schema.
// cache=shared keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Staff{},
		&models.StaffService{},
		&models.TimeSlot{},
		&models.Booking{},
		&models.Notification{},
	))

	return db
}

func seedService(t *testing.T, db *gorm.DB, name string, active bool) models.Service {
	t.Helper()
	service := models.Service{
		Name:     name,
		Price:    "40.00",
		Duration: 45,
		IsActive: active,
	}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func seedStaff(t *testing.T, db *gorm.DB, name string, active bool) models.Staff {
	t.Helper()
	staff := models.Staff{
		Name:         name,
		Role:         "Stylist",
		IsActive:     active,
		WorkingHours: models.JSONB{},
	}
	require.NoError(t, db.Create(&staff).Error)
	return staff
}

func linkStaffService(t *testing.T, db *gorm.DB, staffID, serviceID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&models.StaffService{StaffID: staffID, ServiceID: serviceID}).Error)
}

func seedSlot(t *testing.T, db *gorm.DB, staffID uuid.UUID, date, clock string, available bool) models.TimeSlot {
	t.Helper()
	slot := models.TimeSlot{
		StaffID:     staffID,
		Date:        date,
		Time:        clock,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(&slot).Error)
	return slot
}

func selectionFor(service models.Service, staff models.Staff, date, clock string) BookingSelection {
	return BookingSelection{
		ServiceID:     service.ID,
		StaffID:       staff.ID,
		Date:          date,
		Time:          clock,
		CustomerName:  "Asha Rahman",
		CustomerPhone: "+8801712345678",
		CustomerEmail: "asha@example.com",
	}
}
