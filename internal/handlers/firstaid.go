package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-booking-server/internal/gemini"
	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/utils"
)

// firstAidFraming is prepended to every prompt before it reaches the
// text-generation service.
const firstAidFraming = "You are a first-aid assistant. Provide safe, general advice, " +
	"include urgent warning signs, and recommend seeking professional care when appropriate.\n\n"

// FirstAidHandler handles first-aid assistant exchanges.
type FirstAidHandler struct {
	DB        *gorm.DB
	Assistant *gemini.Client
}

// NewFirstAidHandler creates a new FirstAidHandler.
func NewFirstAidHandler(db *gorm.DB, assistant *gemini.Client) *FirstAidHandler {
	return &FirstAidHandler{DB: db, Assistant: assistant}
}

// FirstAidRequest represents the request body for an assistant exchange.
type FirstAidRequest struct {
	Prompt string  `json:"prompt"`
	UserID *string `json:"userId"`
}

// Exchange forwards the prompt to the assistant, persists the exchange
// (fallback responses included) and returns the response text. Assistant
// unavailability never fails the request; only an empty prompt does.
func (h *FirstAidHandler) Exchange(c *gin.Context) {
	var req FirstAidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		utils.BadRequest(c, "Prompt is required")
		return
	}

	response := h.Assistant.Generate(c.Request.Context(), firstAidFraming+prompt)

	userID := req.UserID
	if userID != nil && *userID == "" {
		userID = nil
	}

	chat := models.FirstAidChat{
		UserID:   userID,
		Prompt:   prompt,
		Response: response,
	}
	if err := h.DB.Create(&chat).Error; err != nil {
		utils.InternalServerError(c, "Failed to store chat: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"id": chat.ID, "response": response})
}
