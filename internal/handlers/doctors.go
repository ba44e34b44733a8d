package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/search"
	"hospital-booking-server/internal/utils"
)

// DoctorHandler handles doctor profile updates and the ranked search.
type DoctorHandler struct {
	DB *gorm.DB
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{DB: db}
}

// UpdateDoctor handles partial profile updates.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	doctorID := c.Param("id")

	var patch models.DoctorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	patch.Apply(&doctor)

	if err := h.DB.Save(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to update doctor: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"doctor": doctor})
}

// SearchDoctors handles the specialization-filtered, distance-ranked
// doctor search. Malformed caller coordinates degrade to an unranked
// result list; the endpoint never hard-fails on bad query input.
func (h *DoctorHandler) SearchDoctors(c *gin.Context) {
	specialization := c.Query("specialization")
	userLat := c.Query("userLat")
	userLng := c.Query("userLng")

	doctors := make([]search.DoctorResult, 0)
	err := h.DB.Table("doctors").
		Select("doctors.id, doctors.hospital_id, doctors.name, doctors.qualification, doctors.specialization, doctors.description, doctors.latitude, doctors.longitude, " +
			"hospitals.name AS hospital_name, hospitals.address AS hospital_address, " +
			"hospitals.latitude AS hospital_latitude, hospitals.longitude AS hospital_longitude").
		Joins("JOIN hospitals ON hospitals.id = doctors.hospital_id").
		Order("doctors.created_at").
		Scan(&doctors).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	doctors = search.FilterBySpecialization(doctors, specialization)

	if userLat != "" && userLng != "" {
		lat, latErr := strconv.ParseFloat(userLat, 64)
		lng, lngErr := strconv.ParseFloat(userLng, 64)
		if latErr == nil && lngErr == nil {
			doctors = search.RankByDistance(doctors, lat, lng)
		}
	}

	utils.Success(c, gin.H{"doctors": doctors})
}
