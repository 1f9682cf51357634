package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tezbase/thesis-api/internal/models"
)

func TestInstituteCreateGetRoundTrip(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	w := doRequest(t, r, http.MethodPost, "/institutes/", map[string]interface{}{
		"name":          "Institute of Social Sciences",
		"university_id": f.university.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Institute
	decodeData(t, w, &created)
	require.NotZero(t, created.ID)

	w = doRequest(t, r, http.MethodGet, "/institutes/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Institute
	decodeData(t, w, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Institute of Social Sciences", fetched.Name)
	assert.Equal(t, f.university.ID, fetched.UniversityID)
}

func TestCreateInstituteDanglingUniversityFails(t *testing.T) {
	r, db := newTestServer(t)
	loadFixture(t, db)

	w := doRequest(t, r, http.MethodPost, "/institutes/", map[string]interface{}{
		"name":          "Orphan Institute",
		"university_id": 99999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "FOREIGN_KEY_VIOLATION", env.Error.Code)
}

func TestListInstitutesFilters(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	other := models.University{Name: "Istanbul University"}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&models.Institute{Name: "Marine Institute", UniversityID: other.ID}).Error)

	// Case-insensitive substring on name
	w := doRequest(t, r, http.MethodGet, "/institutes/?name=SCIENCE", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var institutes []models.Institute
	decodeData(t, w, &institutes)
	require.Len(t, institutes, 1)
	assert.Equal(t, f.institute.ID, institutes[0].ID)

	// Exact university filter
	w = doRequest(t, r, http.MethodGet, "/institutes/?university_id="+itoa(other.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &institutes)
	require.Len(t, institutes, 1)
	assert.Equal(t, "Marine Institute", institutes[0].Name)

	// Both combined match nothing
	w = doRequest(t, r, http.MethodGet, "/institutes/?name=marine&university_id="+itoa(f.university.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &institutes)
	assert.Empty(t, institutes)
}

func TestGetInstitutesByUniversity(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	w := doRequest(t, r, http.MethodGet, "/institutes/university/"+itoa(f.university.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var institutes []models.Institute
	decodeData(t, w, &institutes)
	require.Len(t, institutes, 1)

	empty := models.University{Name: "Brand New University"}
	require.NoError(t, db.Create(&empty).Error)

	w = doRequest(t, r, http.MethodGet, "/institutes/university/"+itoa(empty.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateInstitutePartial(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	w := doRequest(t, r, http.MethodPut, "/institutes/"+itoa(f.institute.ID), map[string]interface{}{
		"name": "Renamed Institute",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Institute
	decodeData(t, w, &updated)
	assert.Equal(t, "Renamed Institute", updated.Name)
	assert.Equal(t, f.university.ID, updated.UniversityID)

	// Dangling university reference is rejected and nothing changes
	w = doRequest(t, r, http.MethodPut, "/institutes/"+itoa(f.institute.ID), map[string]interface{}{
		"name":          "Should Not Stick",
		"university_id": 99999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var current models.Institute
	require.NoError(t, db.First(&current, "institute_id = ?", f.institute.ID).Error)
	assert.Equal(t, "Renamed Institute", current.Name)
}
