package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a registered patient.
type User struct {
	BaseModel
	Name      string   `gorm:"size:255;not null" json:"name"`
	Email     string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Mobile    string   `gorm:"size:32" json:"mobile,omitempty"`
	Password  string   `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Height    *float64 `json:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	DOB       string   `gorm:"size:32" json:"dob,omitempty"`
	Age       *int     `json:"age"`
	Address   string   `gorm:"size:255" json:"address,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// Relations (not always preloaded)
	Appointments  []Appointment  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FirstAidChats []FirstAidChat `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile,omitempty"`
	Height    *float64  `json:"height,omitempty"`
	Weight    *float64  `json:"weight,omitempty"`
	DOB       string    `json:"dob,omitempty"`
	Age       *int      `json:"age"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Height:    u.Height,
		Weight:    u.Weight,
		DOB:       u.DOB,
		Age:       u.Age,
		Address:   u.Address,
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// dobLayouts are the date formats accepted for a date of birth.
var dobLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// AgeFromDOB derives a whole-year age from an ISO date-of-birth string.
// Returns nil when the string is empty or unparseable.
func AgeFromDOB(dob string) *int {
	if dob == "" {
		return nil
	}
	var birth time.Time
	var err error
	for _, layout := range dobLayouts {
		birth, err = time.Parse(layout, dob)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil
	}
	age := int(time.Since(birth).Hours() / 24 / 365.25)
	return &age
}
