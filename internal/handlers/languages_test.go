package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tezbase/thesis-api/internal/models"
)

func TestCreateLanguageDuplicateNameFails(t *testing.T) {
	r, db := newTestServer(t)
	loadFixture(t, db)

	w := doRequest(t, r, http.MethodPost, "/languages/", map[string]interface{}{
		"language_name": "English",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "UNIQUE_VIOLATION", env.Error.Code)
	assert.EqualValues(t, 1, count(t, db, &models.Language{}, "language_name = ?", "English"))
}

func TestLanguageCrud(t *testing.T) {
	r, db := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/languages/", map[string]interface{}{
		"language_name": "German",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Language
	decodeData(t, w, &created)
	require.NotZero(t, created.ID)

	w = doRequest(t, r, http.MethodPut, "/languages/"+itoa(created.ID), map[string]interface{}{
		"language_name": "French",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Language
	decodeData(t, w, &updated)
	assert.Equal(t, "French", updated.LanguageName)

	w = doRequest(t, r, http.MethodDelete, "/languages/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, count(t, db, &models.Language{}, ""))

	w = doRequest(t, r, http.MethodGet, "/languages/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
