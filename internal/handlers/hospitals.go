package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-booking-server/internal/config"
	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/recaptcha"
	"hospital-booking-server/internal/utils"
)

// HospitalHandler handles hospital account requests.
type HospitalHandler struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Verifier *recaptcha.Verifier
}

// NewHospitalHandler creates a new HospitalHandler.
func NewHospitalHandler(db *gorm.DB, cfg *config.Config, verifier *recaptcha.Verifier) *HospitalHandler {
	return &HospitalHandler{DB: db, Cfg: cfg, Verifier: verifier}
}

// RegisterHospitalRequest represents the request body for hospital
// registration. Schedule keys are accepted in both camelCase and
// snake_case for compatibility with older clients.
type RegisterHospitalRequest struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Password             string   `json:"password"`
	Emergency            bool     `json:"emergency"`
	MorningFrom          string   `json:"morningFrom"`
	MorningTo            string   `json:"morningTo"`
	EveningFrom          string   `json:"eveningFrom"`
	EveningTo            string   `json:"eveningTo"`
	MorningFromSnake     string   `json:"morning_from"`
	MorningToSnake       string   `json:"morning_to"`
	EveningFromSnake     string   `json:"evening_from"`
	EveningToSnake       string   `json:"evening_to"`
	Address              string   `json:"address"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	DoctorName           string   `json:"doctorName"`
	DoctorQualification  string   `json:"doctorQualification"`
	DoctorSpecialization string   `json:"doctorSpecialization"`
	DoctorDescription    string   `json:"doctorDescription"`
	RecaptchaToken       string   `json:"recaptchaToken"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Register handles hospital registration. When a doctor name is supplied
// the hospital's primary doctor is created in the same request.
func (h *HospitalHandler) Register(c *gin.Context) {
	var req RegisterHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if !h.Verifier.Verify(c.Request.Context(), req.RecaptchaToken) {
		utils.BadRequest(c, "reCAPTCHA verification failed")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.BadRequest(c, "Missing required fields")
		return
	}

	var existing models.Hospital
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.BadRequest(c, "Email already registered")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	hospital := models.Hospital{
		Name:        req.Name,
		Email:       req.Email,
		Emergency:   req.Emergency,
		MorningFrom: firstNonEmpty(req.MorningFrom, req.MorningFromSnake),
		MorningTo:   firstNonEmpty(req.MorningTo, req.MorningToSnake),
		EveningFrom: firstNonEmpty(req.EveningFrom, req.EveningFromSnake),
		EveningTo:   firstNonEmpty(req.EveningTo, req.EveningToSnake),
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if err := hospital.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.DB.Create(&hospital).Error; err != nil {
		utils.InternalServerError(c, "Failed to create hospital: "+err.Error())
		return
	}

	var doctor *models.Doctor
	if req.DoctorName != "" {
		doctor = &models.Doctor{
			HospitalID:     hospital.ID,
			Name:           req.DoctorName,
			Qualification:  req.DoctorQualification,
			Specialization: req.DoctorSpecialization,
			Description:    req.DoctorDescription,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
		}
		if err := h.DB.Create(doctor).Error; err != nil {
			utils.InternalServerError(c, "Failed to create doctor: "+err.Error())
			return
		}
	}

	utils.Success(c, gin.H{"hospital": hospital.Sanitize(doctor), "doctor": doctor})
}

// LoginHospitalRequest represents the request body for hospital login.
type LoginHospitalRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Login handles hospital login.
func (h *HospitalHandler) Login(c *gin.Context) {
	var req LoginHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if !h.Verifier.Verify(c.Request.Context(), req.RecaptchaToken) {
		utils.BadRequest(c, "reCAPTCHA verification failed")
		return
	}

	var hospital models.Hospital
	if err := h.DB.Where("email = ?", req.Email).First(&hospital).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Unauthorized(c, "Invalid credentials")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !hospital.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(hospital.ID, utils.KindHospital, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	doctor := h.primaryDoctor(hospital.ID)
	utils.Success(c, gin.H{"hospital": hospital.Sanitize(doctor), "doctor": doctor, "token": token})
}

// GetHospital handles fetching a hospital and its primary doctor by ID.
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	hospitalID := c.Param("id")

	var hospital models.Hospital
	if err := h.DB.First(&hospital, "id = ?", hospitalID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Hospital not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	doctor := h.primaryDoctor(hospital.ID)
	utils.Success(c, gin.H{"hospital": hospital.Sanitize(doctor), "doctor": doctor})
}

// UpdateHospital handles partial profile updates.
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	hospitalID := c.Param("id")

	var patch models.HospitalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var hospital models.Hospital
	if err := h.DB.First(&hospital, "id = ?", hospitalID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Hospital not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	patch.Apply(&hospital)

	if err := h.DB.Save(&hospital).Error; err != nil {
		utils.InternalServerError(c, "Failed to update hospital: "+err.Error())
		return
	}

	doctor := h.primaryDoctor(hospital.ID)
	utils.Success(c, gin.H{"hospital": hospital.Sanitize(doctor), "doctor": doctor})
}

// primaryDoctor returns the hospital's first doctor, or nil when it has none.
func (h *HospitalHandler) primaryDoctor(hospitalID string) *models.Doctor {
	var doctor models.Doctor
	if err := h.DB.Where("hospital_id = ?", hospitalID).Order("created_at").First(&doctor).Error; err != nil {
		return nil
	}
	return &doctor
}
