package models

// Patch structs carry the named optional fields a partial update may touch.
// A nil field means "leave unchanged"; a non-nil field is applied even when
// it points at a zero value. Apply functions are pure merges with no
// knowledge of the request shape.

// UserPatch is the set of user fields a profile update may change.
type UserPatch struct {
	Name      *string  `json:"name"`
	Mobile    *string  `json:"mobile"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
	DOB       *string  `json:"dob"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Apply merges the patch into the user. Changing the date of birth
// re-derives the stored age.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Mobile != nil {
		u.Mobile = *p.Mobile
	}
	if p.Height != nil {
		u.Height = p.Height
	}
	if p.Weight != nil {
		u.Weight = p.Weight
	}
	if p.DOB != nil {
		u.DOB = *p.DOB
		u.Age = AgeFromDOB(*p.DOB)
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Latitude != nil {
		u.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		u.Longitude = p.Longitude
	}
}

// HospitalPatch is the set of hospital fields a profile update may change.
type HospitalPatch struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Emergency   *bool    `json:"emergency"`
	MorningFrom *string  `json:"morning_from"`
	MorningTo   *string  `json:"morning_to"`
	EveningFrom *string  `json:"evening_from"`
	EveningTo   *string  `json:"evening_to"`
}

// Apply merges the patch into the hospital.
func (p HospitalPatch) Apply(h *Hospital) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.Latitude != nil {
		h.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		h.Longitude = p.Longitude
	}
	if p.Emergency != nil {
		h.Emergency = *p.Emergency
	}
	if p.MorningFrom != nil {
		h.MorningFrom = *p.MorningFrom
	}
	if p.MorningTo != nil {
		h.MorningTo = *p.MorningTo
	}
	if p.EveningFrom != nil {
		h.EveningFrom = *p.EveningFrom
	}
	if p.EveningTo != nil {
		h.EveningTo = *p.EveningTo
	}
}

// DoctorPatch is the set of doctor fields a profile update may change.
type DoctorPatch struct {
	Name           *string  `json:"name"`
	Qualification  *string  `json:"qualification"`
	Specialization *string  `json:"specialization"`
	Description    *string  `json:"description"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// Apply merges the patch into the doctor.
func (p DoctorPatch) Apply(d *Doctor) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Qualification != nil {
		d.Qualification = *p.Qualification
	}
	if p.Specialization != nil {
		d.Specialization = *p.Specialization
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Latitude != nil {
		d.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		d.Longitude = p.Longitude
	}
}
