package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/utils"
)

// AppointmentHandler handles the appointment lifecycle.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// CreateAppointmentRequest represents the request body for booking.
type CreateAppointmentRequest struct {
	UserID        string `json:"userId" binding:"required"`
	HospitalID    string `json:"hospitalId" binding:"required"`
	DoctorID      string `json:"doctorId" binding:"required"`
	Problem       string `json:"problem"`
	PreferredTime string `json:"preferredTime"`
}

// CreateAppointment books a new appointment with status Booked.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment := models.Appointment{
		UserID:        req.UserID,
		HospitalID:    req.HospitalID,
		DoctorID:      req.DoctorID,
		Problem:       req.Problem,
		Status:        models.StatusBooked,
		PreferredTime: req.PreferredTime,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"appointment": appointment})
}

// listQuery builds the appointment list join with the booking user's
// contact details, newest first.
func (h *AppointmentHandler) listQuery() *gorm.DB {
	return h.DB.Table("appointments").
		Select("appointments.*, appointments.problem AS reason, " +
			"users.name AS user_name, users.email AS user_email, users.mobile AS user_mobile").
		Joins("LEFT JOIN users ON users.id = appointments.user_id").
		Order("appointments.created_at DESC")
}

// ListAppointments returns appointments, AND-filtered by any of
// userId, hospitalId and doctorId.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	query := h.listQuery()

	if userID := c.Query("userId"); userID != "" {
		query = query.Where("appointments.user_id = ?", userID)
	}
	if hospitalID := c.Query("hospitalId"); hospitalID != "" {
		query = query.Where("appointments.hospital_id = ?", hospitalID)
	}
	if doctorID := c.Query("doctorId"); doctorID != "" {
		query = query.Where("appointments.doctor_id = ?", doctorID)
	}

	appointments := make([]models.AppointmentWithUser, 0)
	if err := query.Scan(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"appointments": appointments})
}

// ListTodayAppointments returns appointments created on the current UTC
// calendar day, filterable by hospitalId and doctorId.
func (h *AppointmentHandler) ListTodayAppointments(c *gin.Context) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	query := h.listQuery().
		Where("appointments.created_at >= ? AND appointments.created_at < ?", dayStart, dayEnd)

	if hospitalID := c.Query("hospitalId"); hospitalID != "" {
		query = query.Where("appointments.hospital_id = ?", hospitalID)
	}
	if doctorID := c.Query("doctorId"); doctorID != "" {
		query = query.Where("appointments.doctor_id = ?", doctorID)
	}

	appointments := make([]models.AppointmentWithUser, 0)
	if err := query.Scan(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"appointments": appointments})
}

// setStatus overwrites the appointment's status and returns the refreshed
// record. Transitions are deliberately permissive: any status can be set
// from any other, matching the booking flow's hospital-side controls.
func (h *AppointmentHandler) setStatus(c *gin.Context, status models.AppointmentStatus) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	appointment.Status = status
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"appointment": appointment})
}

// CancelAppointment moves the appointment to Cancelled.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.setStatus(c, models.StatusCancelled)
}

// GetInAppointment moves the appointment to In Consultation.
func (h *AppointmentHandler) GetInAppointment(c *gin.Context) {
	h.setStatus(c, models.StatusInConsultation)
}

// CompleteAppointment moves the appointment to Completed.
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	h.setStatus(c, models.StatusCompleted)
}
