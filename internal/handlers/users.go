package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-booking-server/internal/config"
	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/recaptcha"
	"hospital-booking-server/internal/utils"
)

// UserHandler handles patient account requests.
type UserHandler struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Verifier *recaptcha.Verifier
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB, cfg *config.Config, verifier *recaptcha.Verifier) *UserHandler {
	return &UserHandler{DB: db, Cfg: cfg, Verifier: verifier}
}

// RegisterUserRequest represents the request body for user registration.
type RegisterUserRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Mobile         string   `json:"mobile"`
	Height         *float64 `json:"height"`
	Weight         *float64 `json:"weight"`
	DOB            string   `json:"dob"`
	Address        string   `json:"address"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	RecaptchaToken string   `json:"recaptchaToken"`
}

// Register handles user registration.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
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

	// Check if the email is already taken
	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.BadRequest(c, "Email already registered")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Height:    req.Height,
		Weight:    req.Weight,
		DOB:       req.DOB,
		Age:       models.AgeFromDOB(req.DOB),
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"user": user.Sanitize()})
}

// LoginUserRequest represents the request body for user login.
type LoginUserRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Login handles user login.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if !h.Verifier.Verify(c.Request.Context(), req.RecaptchaToken) {
		utils.BadRequest(c, "reCAPTCHA verification failed")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Unauthorized(c, "Invalid credentials")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, utils.KindUser, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	utils.Success(c, gin.H{"user": user.Sanitize(), "token": token})
}

// GetUser handles fetching a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, gin.H{"user": user.Sanitize()})
}

// UpdateUser handles partial profile updates.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	patch.Apply(&user)

	if err := h.DB.Save(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to update user: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"user": user.Sanitize()})
}
