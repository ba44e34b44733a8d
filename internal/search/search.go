// Package search implements the doctor search filter and distance ranking.
package search

import (
	"sort"
	"strings"

	"hospital-booking-server/internal/geo"
)

// DoctorResult is a doctor row annotated with its owning hospital's
// name, address and coordinates, and, when ranking was requested,
// the distance from the caller.
type DoctorResult struct {
	ID                string   `json:"id"`
	HospitalID        string   `json:"hospital_id"`
	Name              string   `json:"name"`
	Qualification     string   `json:"qualification,omitempty"`
	Specialization    string   `json:"specialization,omitempty"`
	Description       string   `json:"description,omitempty"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	HospitalName      string   `json:"hospital_name"`
	HospitalAddress   string   `json:"hospital_address,omitempty"`
	HospitalLatitude  *float64 `json:"hospital_latitude"`
	HospitalLongitude *float64 `json:"hospital_longitude"`
	DistanceKm        *float64 `json:"distance_km,omitempty"`
}

// FilterBySpecialization keeps doctors whose specialization contains the
// query, case-insensitively. An empty query keeps everything.
func FilterBySpecialization(doctors []DoctorResult, specialization string) []DoctorResult {
	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return doctors
	}
	query := strings.ToLower(specialization)
	filtered := make([]DoctorResult, 0, len(doctors))
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Specialization), query) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// RankByDistance annotates each doctor with its distance from the caller
// and sorts ascending. The doctor's own coordinates win over the owning
// hospital's; a doctor with neither keeps a nil distance and sorts after
// every ranked doctor, preserving retrieval order among themselves.
func RankByDistance(doctors []DoctorResult, callerLat, callerLng float64) []DoctorResult {
	for i := range doctors {
		lat, lng := doctors[i].Coordinates()
		if lat == nil || lng == nil {
			doctors[i].DistanceKm = nil
			continue
		}
		km := geo.HaversineKm(callerLat, callerLng, *lat, *lng)
		doctors[i].DistanceKm = &km
	}

	sort.SliceStable(doctors, func(i, j int) bool {
		di, dj := doctors[i].DistanceKm, doctors[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})

	return doctors
}

// Coordinates returns the doctor's effective location: its own coordinates
// when present, otherwise the owning hospital's.
func (d *DoctorResult) Coordinates() (*float64, *float64) {
	if d.Latitude != nil && d.Longitude != nil {
		return d.Latitude, d.Longitude
	}
	return d.HospitalLatitude, d.HospitalLongitude
}
