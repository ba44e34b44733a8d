package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func testDoctors() []DoctorResult {
	return []DoctorResult{
		{ID: "d1", Name: "Dr. Far", Specialization: "Cardiology", HospitalLatitude: f(10), HospitalLongitude: f(10)},
		{ID: "d2", Name: "Dr. Near", Specialization: "cardiology and ECG", HospitalLatitude: f(1), HospitalLongitude: f(1)},
		{ID: "d3", Name: "Dr. Nowhere", Specialization: "Cardiology"},
		{ID: "d4", Name: "Dr. Skin", Specialization: "Dermatology", HospitalLatitude: f(2), HospitalLongitude: f(2)},
	}
}

func TestFilterBySpecializationSubstringCaseInsensitive(t *testing.T) {
	filtered := FilterBySpecialization(testDoctors(), "CARDIO")
	require.Len(t, filtered, 3)
	for _, d := range filtered {
		assert.NotEqual(t, "d4", d.ID)
	}
}

func TestFilterBySpecializationEmptyKeepsAll(t *testing.T) {
	assert.Len(t, FilterBySpecialization(testDoctors(), ""), 4)
	assert.Len(t, FilterBySpecialization(testDoctors(), "   "), 4)
}

func TestFilterBySpecializationNoMatch(t *testing.T) {
	assert.Empty(t, FilterBySpecialization(testDoctors(), "neurology"))
}

func TestRankByDistanceAscendingWithUndefinedLast(t *testing.T) {
	ranked := RankByDistance(testDoctors(), 0, 0)
	require.Len(t, ranked, 4)

	assert.Equal(t, "d2", ranked[0].ID)
	assert.Equal(t, "d4", ranked[1].ID)
	assert.Equal(t, "d1", ranked[2].ID)
	assert.Equal(t, "d3", ranked[3].ID)
	assert.Nil(t, ranked[3].DistanceKm)

	// Non-decreasing among the ranked entries
	for i := 0; i+1 < 3; i++ {
		require.NotNil(t, ranked[i].DistanceKm)
		require.NotNil(t, ranked[i+1].DistanceKm)
		assert.LessOrEqual(t, *ranked[i].DistanceKm, *ranked[i+1].DistanceKm)
	}
}

func TestRankByDistanceUndefinedKeepRetrievalOrder(t *testing.T) {
	doctors := []DoctorResult{
		{ID: "a"},
		{ID: "b", HospitalLatitude: f(5), HospitalLongitude: f(5)},
		{ID: "c"},
	}
	ranked := RankByDistance(doctors, 0, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, "a", ranked[1].ID)
	assert.Equal(t, "c", ranked[2].ID)
}

func TestRankByDistancePrefersDoctorCoordinates(t *testing.T) {
	doctors := []DoctorResult{
		// Own coordinates near the caller, hospital far away
		{ID: "own", Latitude: f(0.5), Longitude: f(0.5), HospitalLatitude: f(50), HospitalLongitude: f(50)},
		// Only hospital coordinates
		{ID: "hosp", HospitalLatitude: f(3), HospitalLongitude: f(3)},
	}
	ranked := RankByDistance(doctors, 0, 0)
	require.NotNil(t, ranked[0].DistanceKm)
	assert.Equal(t, "own", ranked[0].ID)
	assert.Less(t, *ranked[0].DistanceKm, *ranked[1].DistanceKm)
}

func TestCoordinatesFallback(t *testing.T) {
	d := DoctorResult{HospitalLatitude: f(7), HospitalLongitude: f(8)}
	lat, lng := d.Coordinates()
	require.NotNil(t, lat)
	require.NotNil(t, lng)
	assert.Equal(t, 7.0, *lat)
	assert.Equal(t, 8.0, *lng)

	// Doctor's own coordinates win when both are present
	d.Latitude, d.Longitude = f(1), f(2)
	lat, lng = d.Coordinates()
	assert.Equal(t, 1.0, *lat)
	assert.Equal(t, 2.0, *lng)

	// A lone latitude without longitude is not a usable location
	d2 := DoctorResult{Latitude: f(1), HospitalLatitude: f(7), HospitalLongitude: f(8)}
	lat, lng = d2.Coordinates()
	assert.Equal(t, 7.0, *lat)
	assert.Equal(t, 8.0, *lng)
}
