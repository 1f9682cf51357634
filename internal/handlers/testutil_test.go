package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tezbase/thesis-api/internal/config"
	"github.com/tezbase/thesis-api/internal/database"
	"github.com/tezbase/thesis-api/internal/models"
	"github.com/tezbase/thesis-api/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory SQLite database with foreign keys
// enforced, so cascade and restrict rules behave like the real store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		GinMode:     gin.TestMode,
		CORSOrigins: []string{"*"},
	}
	return router.Setup(db, cfg), db
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   errorBody       `json:"error"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	env := decodeEnvelope(t, w)
	require.True(t, env.Success, "body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// fixture is a small thesis graph: one university with one institute, two
// authors with one thesis each. Smith's thesis carries a keyword, a topic
// and a supervisor; Jones's thesis has no associations at all.
type fixture struct {
	university models.University
	institute  models.Institute
	smith      models.Author
	jones      models.Author
	english    models.Language
	turkish    models.Language
	keyword    models.Keyword
	topic      models.SubjectTopic
	supervisor models.Supervisor

	smithThesis models.Thesis
	jonesThesis models.Thesis
}

func loadFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	f := &fixture{
		university: models.University{Name: "Ankara University"},
		smith:      models.Author{FirstName: "John", LastName: "Smith"},
		jones:      models.Author{FirstName: "Emma", LastName: "Jones"},
		english:    models.Language{LanguageName: "English"},
		turkish:    models.Language{LanguageName: "Turkish"},
		keyword:    models.Keyword{KeywordName: "machine learning"},
		topic:      models.SubjectTopic{TopicName: "Computer Science"},
		supervisor: models.Supervisor{FirstName: "Mehmet", LastName: "Kaya", Title: "Prof. Dr."},
	}

	require.NoError(t, db.Create(&f.university).Error)
	f.institute = models.Institute{Name: "Institute of Science", UniversityID: f.university.ID}
	require.NoError(t, db.Create(&f.institute).Error)
	require.NoError(t, db.Create(&f.smith).Error)
	require.NoError(t, db.Create(&f.jones).Error)
	require.NoError(t, db.Create(&f.english).Error)
	require.NoError(t, db.Create(&f.turkish).Error)
	require.NoError(t, db.Create(&f.keyword).Error)
	require.NoError(t, db.Create(&f.topic).Error)
	require.NoError(t, db.Create(&f.supervisor).Error)

	f.smithThesis = models.Thesis{
		Title:          "Neural Ranking Models for Digital Archives",
		Abstract:       "Applies learned ranking to archive retrieval.",
		AuthorID:       f.smith.ID,
		Year:           2020,
		Type:           models.TypeMaster,
		UniversityID:   f.university.ID,
		InstituteID:    f.institute.ID,
		NumberOfPages:  96,
		SubmissionDate: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		LanguageID:     f.english.ID,
	}
	require.NoError(t, db.Create(&f.smithThesis).Error)

	f.jonesThesis = models.Thesis{
		Title:          "Sedimentology of the Central Anatolian Basin",
		Abstract:       "Field study of basin stratigraphy.",
		AuthorID:       f.jones.ID,
		Year:           2021,
		Type:           models.TypeDoctorate,
		UniversityID:   f.university.ID,
		InstituteID:    f.institute.ID,
		NumberOfPages:  210,
		SubmissionDate: time.Date(2021, 9, 15, 0, 0, 0, 0, time.UTC),
		LanguageID:     f.turkish.ID,
	}
	require.NoError(t, db.Create(&f.jonesThesis).Error)

	require.NoError(t, db.Create(&models.ThesisKeyword{
		ThesisNo:  f.smithThesis.ID,
		KeywordID: f.keyword.ID,
	}).Error)
	require.NoError(t, db.Create(&models.ThesisTopic{
		ThesisNo: f.smithThesis.ID,
		TopicID:  f.topic.ID,
	}).Error)
	require.NoError(t, db.Create(&models.ThesisSupervisor{
		ThesisNo:     f.smithThesis.ID,
		SupervisorID: f.supervisor.ID,
	}).Error)

	return f
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
