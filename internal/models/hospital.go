package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Hospital represents a registered hospital account.
type Hospital struct {
	BaseModel
	Name        string   `gorm:"size:255;not null" json:"name"`
	Email       string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password    string   `gorm:"size:255;not null" json:"-"`
	Emergency   bool     `gorm:"default:false" json:"emergency"`
	MorningFrom string   `gorm:"size:16" json:"morning_from,omitempty"`
	MorningTo   string   `gorm:"size:16" json:"morning_to,omitempty"`
	EveningFrom string   `gorm:"size:16" json:"evening_from,omitempty"`
	EveningTo   string   `gorm:"size:16" json:"evening_to,omitempty"`
	Address     string   `gorm:"size:255" json:"address,omitempty"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	// Relations
	Doctors      []Doctor      `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
}

// HospitalSanitized represents the hospital data safe to send in API responses.
// The owning hospital's primary doctor is embedded when loaded.
type HospitalSanitized struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Emergency   bool      `json:"emergency"`
	MorningFrom string    `json:"morning_from,omitempty"`
	MorningTo   string    `json:"morning_to,omitempty"`
	EveningFrom string    `json:"evening_from,omitempty"`
	EveningTo   string    `json:"evening_to,omitempty"`
	Address     string    `json:"address,omitempty"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Doctor      *Doctor   `json:"doctor,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the hospital
func (h *Hospital) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the hospital's hashed password
func (h *Hospital) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(h.Password), []byte(password))
	return err == nil
}

// Sanitize creates a HospitalSanitized struct, excluding the credential hash.
func (h *Hospital) Sanitize(doctor *Doctor) HospitalSanitized {
	return HospitalSanitized{
		ID:          h.ID,
		Name:        h.Name,
		Email:       h.Email,
		Emergency:   h.Emergency,
		MorningFrom: h.MorningFrom,
		MorningTo:   h.MorningTo,
		EveningFrom: h.EveningFrom,
		EveningTo:   h.EveningTo,
		Address:     h.Address,
		Latitude:    h.Latitude,
		Longitude:   h.Longitude,
		Doctor:      doctor,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
