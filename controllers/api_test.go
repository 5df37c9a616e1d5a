package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"salon-booking-backend/config"
	"salon-booking-backend/models"
	"salon-booking-backend/routes"
	"salon-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-do-not-use")
	os.Exit(m.Run())
}

// setupAPI swaps the global DB for a fresh in-memory database and builds the
// full router, so requests exercise the real middleware chain.
func setupAPI(t *testing.T) *gin.Engine {
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

	config.DB = db
	return routes.SetupRouter()
}

func createUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	user := models.User{
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password: "supersecret1",
		FullName: "Test User",
		Phone:    "+8801712345678",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID.String())
	require.NoError(t, err)
	return user, token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedCatalog(t *testing.T) (models.Service, models.Staff, models.TimeSlot) {
	t.Helper()

	service := models.Service{Name: "Classic Haircut", Price: "40.00", Duration: 45, IsActive: true}
	require.NoError(t, config.DB.Create(&service).Error)

	staff := models.Staff{Name: "Asha Rahman", Role: "Senior Stylist", IsActive: true, WorkingHours: models.JSONB{}}
	require.NoError(t, config.DB.Create(&staff).Error)

	require.NoError(t, config.DB.Create(&models.StaffService{StaffID: staff.ID, ServiceID: service.ID}).Error)

	slot := models.TimeSlot{StaffID: staff.ID, Date: "2024-06-01", Time: "10:00", IsAvailable: true}
	require.NoError(t, config.DB.Create(&slot).Error)

	return service, staff, slot
}

func TestPublicServiceListHidesInactive(t *testing.T) {
	router := setupAPI(t)
	seedCatalog(t)

	retired := models.Service{Name: "Discontinued Perm", Price: "30.00", Duration: 30, IsActive: false}
	require.NoError(t, config.DB.Create(&retired).Error)

	w := doRequest(router, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Classic Haircut", list[0].Name)
}

func TestStaffListingFilteredByService(t *testing.T) {
	router := setupAPI(t)
	service, _, _ := seedCatalog(t)

	other := models.Service{Name: "Bridal Makeup", Price: "150.00", Duration: 180, IsActive: true}
	require.NoError(t, config.DB.Create(&other).Error)

	w := doRequest(router, http.MethodGet, "/api/staff?service_id="+service.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Staff
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// Nobody offers the other service, so step 2 has no candidates
	w = doRequest(router, http.MethodGet, "/api/staff?service_id="+other.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestAvailabilityListing(t *testing.T) {
	router := setupAPI(t)
	_, staff, _ := seedCatalog(t)

	taken := models.TimeSlot{StaffID: staff.ID, Date: "2024-06-01", Time: "09:00", IsAvailable: false}
	require.NoError(t, config.DB.Create(&taken).Error)

	w := doRequest(router, http.MethodGet,
		fmt.Sprintf("/api/availability?staff_id=%s&date=2024-06-01", staff.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var slots []models.TimeSlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].Time)

	w = doRequest(router, http.MethodGet, "/api/availability?staff_id=nope&date=2024-06-01", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingRequiresAuthentication(t *testing.T) {
	router := setupAPI(t)
	service, staff, _ := seedCatalog(t)

	body := gin.H{
		"serviceId":     service.ID,
		"staffId":       staff.ID,
		"date":          "2024-06-01",
		"time":          "10:00",
		"customerName":  "Asha Rahman",
		"customerPhone": "+8801712345678",
		"customerEmail": "asha@example.com",
	}
	w := doRequest(router, http.MethodPost, "/api/bookings", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingFlowEndToEnd(t *testing.T) {
	router := setupAPI(t)
	service, staff, slot := seedCatalog(t)
	_, token := createUser(t, models.RoleUser)

	body := gin.H{
		"serviceId":     service.ID,
		"staffId":       staff.ID,
		"date":          "2024-06-01",
		"time":          "10:00",
		"customerName":  "Asha Rahman",
		"customerPhone": "+8801712345678",
		"customerEmail": "asha@example.com",
		"notes":         "first visit",
	}

	w := doRequest(router, http.MethodPost, "/api/bookings", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, models.BookingStatusPending, booking.Status)

	var updated models.TimeSlot
	require.NoError(t, config.DB.First(&updated, "id = ?", slot.ID).Error)
	assert.False(t, updated.IsAvailable)

	// A second confirm for the same slot loses the race
	w = doRequest(router, http.MethodPost, "/api/bookings", token, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The booking shows up under the customer's profile
	w = doRequest(router, http.MethodGet, "/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)
}

func TestBookingRejectsUnqualifiedStaff(t *testing.T) {
	router := setupAPI(t)
	_, staff, _ := seedCatalog(t)
	_, token := createUser(t, models.RoleUser)

	other := models.Service{Name: "Bridal Makeup", Price: "150.00", Duration: 180, IsActive: true}
	require.NoError(t, config.DB.Create(&other).Error)

	body := gin.H{
		"serviceId":     other.ID,
		"staffId":       staff.ID,
		"date":          "2024-06-01",
		"time":          "10:00",
		"customerName":  "Asha Rahman",
		"customerPhone": "+8801712345678",
		"customerEmail": "asha@example.com",
	}
	w := doRequest(router, http.MethodPost, "/api/bookings", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router := setupAPI(t)
	_, userToken := createUser(t, models.RoleUser)
	_, adminToken := createUser(t, models.RoleAdmin)

	w := doRequest(router, http.MethodGet, "/api/admin/services", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodGet, "/api/admin/services", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodGet, "/api/admin/services", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminBulkSlotCreation(t *testing.T) {
	router := setupAPI(t)
	_, staff, _ := seedCatalog(t)
	_, adminToken := createUser(t, models.RoleAdmin)

	body := gin.H{
		"staffId":   staff.ID,
		"startDate": "2024-07-01",
		"endDate":   "2024-07-03",
		"times":     []string{"09:00", "09:30"},
	}
	w := doRequest(router, http.MethodPost, "/api/admin/time-slots/bulk", adminToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Created int `json:"created"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Created)

	var count int64
	config.DB.Model(&models.TimeSlot{}).
		Where("staff_id = ? AND date BETWEEN ? AND ?", staff.ID, "2024-07-01", "2024-07-03").
		Count(&count)
	assert.EqualValues(t, 6, count)
}

func TestAdminBookingStatusTransitions(t *testing.T) {
	router := setupAPI(t)
	service, staff, _ := seedCatalog(t)
	_, userToken := createUser(t, models.RoleUser)
	_, adminToken := createUser(t, models.RoleAdmin)

	body := gin.H{
		"serviceId":     service.ID,
		"staffId":       staff.ID,
		"date":          "2024-06-01",
		"time":          "10:00",
		"customerName":  "Asha Rahman",
		"customerPhone": "+8801712345678",
		"customerEmail": "asha@example.com",
	}
	w := doRequest(router, http.MethodPost, "/api/bookings", userToken, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))

	path := fmt.Sprintf("/api/admin/bookings/%s/status", booking.ID)

	w = doRequest(router, http.MethodPut, path, adminToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	// Repeating the transition is rejected
	w = doRequest(router, http.MethodPut, path, adminToken, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// completed is not an accepted target at all
	w = doRequest(router, http.MethodPut, path, adminToken, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, path, adminToken, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupAPI(t)

	w := doRequest(router, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "new.customer@example.com",
		"password": "supersecret1",
		"fullName": "New Customer",
		"phone":    "+8801712345678",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate email is rejected
	w = doRequest(router, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "new.customer@example.com",
		"password": "supersecret1",
		"fullName": "New Customer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "new.customer@example.com",
		"password": "supersecret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	w = doRequest(router, http.MethodGet, "/auth/me", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "new.customer@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
