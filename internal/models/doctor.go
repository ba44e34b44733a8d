package models

// Doctor represents a doctor belonging to exactly one hospital.
// Deleting the hospital cascades to its doctors.
type Doctor struct {
	BaseModel
	HospitalID     string   `gorm:"size:36;index;not null" json:"hospital_id"`
	Name           string   `gorm:"size:255;not null" json:"name"`
	Qualification  string   `gorm:"size:255" json:"qualification,omitempty"`
	Specialization string   `gorm:"size:255" json:"specialization,omitempty"`
	Description    string   `gorm:"type:text" json:"description,omitempty"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`

	// Relations
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"-"`
}
