package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tezbase/thesis-api/internal/models"
)

func TestSearchThesesNoFiltersReturnsAllOrdered(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	w := doRequest(t, r, http.MethodGet, "/theses/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theses []models.Thesis
	decodeData(t, w, &theses)
	require.Len(t, theses, 2)
	assert.Equal(t, f.smithThesis.ID, theses[0].ID)
	assert.Equal(t, f.jonesThesis.ID, theses[1].ID)
}

func TestSearchThesesResultsAreHydrated(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	w := doRequest(t, r, http.MethodGet, "/theses/?author_name=smith", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theses []models.Thesis
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)

	got := theses[0]
	require.NotNil(t, got.Author)
	assert.Equal(t, "Smith", got.Author.LastName)
	require.NotNil(t, got.University)
	assert.Equal(t, f.university.Name, got.University.Name)
	require.NotNil(t, got.Institute)
	assert.Equal(t, f.institute.Name, got.Institute.Name)
	require.NotNil(t, got.Language)
	assert.Equal(t, "English", got.Language.LanguageName)
	require.Len(t, got.Keywords, 1)
	assert.Equal(t, "machine learning", got.Keywords[0].KeywordName)
	require.Len(t, got.Topics, 1)
	require.Len(t, got.Supervisors, 1)
	assert.Equal(t, "Kaya", got.Supervisors[0].LastName)
}

func TestSearchThesesEmptyResultIs404(t *testing.T) {
	r, db := newTestServer(t)
	loadFixture(t, db)

	w := doRequest(t, r, http.MethodGet, "/theses/?title=nonexistent", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestSearchThesesAuthorNameMatchesFirstOrLast(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	// Case-insensitive match on last name
	w := doRequest(t, r, http.MethodGet, "/theses/?author_name=SMITH", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theses []models.Thesis
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)
	assert.Equal(t, f.smithThesis.ID, theses[0].ID)

	// Match on first name as well
	w = doRequest(t, r, http.MethodGet, "/theses/?author_name=emma", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)
	assert.Equal(t, f.jonesThesis.ID, theses[0].ID)
}

func TestSearchThesesFiltersCombineWithAnd(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	// Smith matches year only, Jones matches type only: AND excludes both
	w := doRequest(t, r, http.MethodGet, "/theses/?year=2020&type=Doctorate", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Jones matches both
	w = doRequest(t, r, http.MethodGet, "/theses/?year=2021&type=Doctorate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theses []models.Thesis
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)
	assert.Equal(t, f.jonesThesis.ID, theses[0].ID)
}

func TestSearchThesesKeywordFilter(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	w := doRequest(t, r, http.MethodGet, "/theses/?keyword=machine", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theses []models.Thesis
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)
	assert.Equal(t, f.smithThesis.ID, theses[0].ID)
}

// A thesis with no keywords or topics must still show up when no
// keyword/topic filter is set: the join must not drop it.
func TestSearchThesesKeepsThesesWithoutAssociations(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	w := doRequest(t, r, http.MethodGet, "/theses/?author_name=jones", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theses []models.Thesis
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)
	assert.Equal(t, f.jonesThesis.ID, theses[0].ID)
	assert.Empty(t, theses[0].Keywords)
	assert.Empty(t, theses[0].Topics)
}

func TestSearchThesesByExactIdAndRelatedNames(t *testing.T) {
	r, db := newTestServer(t)
	f := loadFixture(t, db)

	var theses []models.Thesis

	w := doRequest(t, r, http.MethodGet, "/theses/?thesis_no="+itoa(f.jonesThesis.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)
	assert.Equal(t, f.jonesThesis.ID, theses[0].ID)

	w = doRequest(t, r, http.MethodGet, "/theses/?language=turkish&university=ankara&institute=science", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)
	assert.Equal(t, f.jonesThesis.ID, theses[0].ID)

	w = doRequest(t, r, http.MethodGet, "/theses/?topic=computer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &theses)
	require.Len(t, theses, 1)
	assert.Equal(t, f.smithThesis.ID, theses[0].ID)
}

func TestSearchThesesRejectsNonNumericYear(t *testing.T) {
	r, db := newTestServer(t)
	loadFixture(t, db)

	w := doRequest(t, r, http.MethodGet, "/theses/?year=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}
