package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked         AppointmentStatus = "Booked"
	StatusInConsultation AppointmentStatus = "In Consultation"
	StatusCompleted      AppointmentStatus = "Completed"
	StatusCancelled      AppointmentStatus = "Cancelled"
)

// Appointment represents a booking made by a user at a hospital.
// User and hospital are weak references; deleting either cascades here.
type Appointment struct {
	BaseModel
	UserID        string            `gorm:"size:36;index;not null" json:"user_id"`
	HospitalID    string            `gorm:"size:36;index;not null" json:"hospital_id"`
	DoctorID      string            `gorm:"size:36;index" json:"doctor_id"`
	Problem       string            `gorm:"size:255" json:"problem,omitempty"`
	Status        AppointmentStatus `gorm:"size:32;default:'Booked'" json:"status"`
	PreferredTime string            `gorm:"size:64" json:"preferred_time,omitempty"`

	// Relations
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"-"`
}

// AppointmentWithUser is an appointment row joined with the booking
// user's contact details, as returned by the list endpoints.
type AppointmentWithUser struct {
	Appointment
	Reason     string `json:"reason,omitempty"`
	UserName   string `json:"user_name,omitempty"`
	UserEmail  string `json:"user_email,omitempty"`
	UserMobile string `json:"user_mobile,omitempty"`
}
