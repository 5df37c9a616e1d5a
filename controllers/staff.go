// controllers/staff.go
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

// CreateStaffInput defines the expected JSON structure for creating a staff member
type CreateStaffInput struct {
	Name         string       `json:"name" binding:"required"`
	Role         string       `json:"role" binding:"required"`
	Bio          string       `json:"bio"`
	ImageURL     string       `json:"imageUrl"`
	IsActive     *bool        `json:"isActive"`
	WorkingHours models.JSONB `json:"workingHours"`
}

// UpdateStaffInput defines the expected JSON structure for updating a staff member
type UpdateStaffInput struct {
	Name         *string       `json:"name"`
	Role         *string       `json:"role"`
	Bio          *string       `json:"bio"`
	ImageURL     *string       `json:"imageUrl"`
	IsActive     *bool         `json:"isActive"`
	WorkingHours *models.JSONB `json:"workingHours"`
}

// GetBookableStaff lists active staff for the booking flow. With a
// service_id query parameter only staff associated with that service are
// returned.
func GetBookableStaff(c *gin.Context) {
	svc := services.NewBookingService(config.DB)

	var serviceID *uuid.UUID
	if raw := c.Query("service_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		serviceID = &parsed
	}

	staff, err := svc.StaffForService(serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// CreateStaff adds a staff member
func CreateStaff(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staff := models.Staff{
		Name:         input.Name,
		Role:         input.Role,
		Bio:          input.Bio,
		ImageURL:     input.ImageURL,
		IsActive:     true,
		WorkingHours: input.WorkingHours,
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}
	if staff.WorkingHours == nil {
		staff.WorkingHours = models.JSONB{}
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// GetAllStaff retrieves every staff member with their service associations
func GetAllStaff(c *gin.Context) {
	var staff []models.Staff
	if err := config.DB.Preload("Services").Order("name asc").Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// UpdateStaff updates an existing staff member
func UpdateStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, "id = ?", staffUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Role != nil {
		staff.Role = *input.Role
	}
	if input.Bio != nil {
		staff.Bio = *input.Bio
	}
	if input.ImageURL != nil {
		staff.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}
	if input.WorkingHours != nil {
		staff.WorkingHours = *input.WorkingHours
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff member")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff removes a staff member and their service associations
func DeleteStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.StaffService{}, "staff_id = ?", staffUUID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Staff{}, "id = ?", staffUUID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff member")
		}
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Staff member deleted successfully")
}

// AssignService links a service to a staff member
func AssignService(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}
	serviceUUID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var existing models.StaffService
	err = config.DB.Where("staff_id = ? AND service_id = ?", staffUUID, serviceUUID).First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Service already assigned to this staff member")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	link := models.StaffService{StaffID: staffUUID, ServiceID: serviceUUID}
	if err := config.DB.Create(&link).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign service")
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UnassignService removes a service link from a staff member
func UnassignService(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}
	serviceUUID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Delete(&models.StaffService{}, "staff_id = ? AND service_id = ?", staffUUID, serviceUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to unassign service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Assignment not found")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Service unassigned successfully")
}
