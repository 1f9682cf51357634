package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type CreateThesisRequest struct {
	Title          string `json:"title" binding:"required"`
	Abstract       string `json:"abstract" binding:"required"`
	AuthorID       int    `json:"author_id" binding:"required"`
	Year           int    `json:"year" binding:"required"`
	Type           string `json:"type" binding:"required"`
	UniversityID   int    `json:"university_id" binding:"required"`
	InstituteID    int    `json:"institute_id" binding:"required"`
	NumberOfPages  int    `json:"number_of_pages" binding:"required"`
	SubmissionDate string `json:"submission_date" binding:"required"`
	LanguageID     int    `json:"language_id" binding:"required"`
}

type UpdateThesisRequest struct {
	Title          *string `json:"title"`
	Abstract       *string `json:"abstract"`
	AuthorID       *int    `json:"author_id"`
	Year           *int    `json:"year"`
	Type           *string `json:"type"`
	UniversityID   *int    `json:"university_id"`
	InstituteID    *int    `json:"institute_id"`
	NumberOfPages  *int    `json:"number_of_pages"`
	SubmissionDate *string `json:"submission_date"`
	LanguageID     *int    `json:"language_id"`
}

// hydrated preloads every relation a thesis response carries.
func hydrated(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("University").
		Preload("Institute").
		Preload("Language").
		Preload("Keywords").
		Preload("Supervisors").
		Preload("Topics")
}

// SearchTheses filters theses by any combination of query parameters, all
// AND-combined. Matching ids are collected through one joined query
// (LEFT joins keep theses without keywords or topics in play), then the
// matches are loaded with their full relation payloads.
func SearchTheses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		matches := db.Model(&models.Thesis{}).
			Distinct("thesis.thesis_no").
			Joins("JOIN author ON author.author_id = thesis.author_id").
			Joins("JOIN language ON language.language_id = thesis.language_id").
			Joins("JOIN university ON university.university_id = thesis.university_id").
			Joins("JOIN institute ON institute.institute_id = thesis.institute_id").
			Joins("LEFT JOIN thesis_keyword ON thesis_keyword.thesis_no = thesis.thesis_no").
			Joins("LEFT JOIN keyword ON keyword.keyword_id = thesis_keyword.keyword_id").
			Joins("LEFT JOIN thesis_topic ON thesis_topic.thesis_no = thesis.thesis_no").
			Joins("LEFT JOIN subject_topic ON subject_topic.topic_id = thesis_topic.topic_id")

		if v := c.Query("thesis_no"); v != "" {
			no, err := strconv.Atoi(v)
			if err != nil {
				respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "thesis_no must be an integer")
				return
			}
			matches = matches.Where("thesis.thesis_no = ?", no)
		}
		if v := c.Query("year"); v != "" {
			year, err := strconv.Atoi(v)
			if err != nil {
				respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be an integer")
				return
			}
			matches = matches.Where("thesis.year = ?", year)
		}
		if v := c.Query("title"); v != "" {
			matches = matches.Where("LOWER(thesis.title) LIKE ?", substring(v))
		}
		if v := c.Query("type"); v != "" {
			matches = matches.Where("LOWER(thesis.type) LIKE ?", substring(v))
		}
		if v := c.Query("language"); v != "" {
			matches = matches.Where("LOWER(language.language_name) LIKE ?", substring(v))
		}
		if v := c.Query("university"); v != "" {
			matches = matches.Where("LOWER(university.name) LIKE ?", substring(v))
		}
		if v := c.Query("institute"); v != "" {
			matches = matches.Where("LOWER(institute.name) LIKE ?", substring(v))
		}
		if v := c.Query("keyword"); v != "" {
			matches = matches.Where("LOWER(keyword.keyword_name) LIKE ?", substring(v))
		}
		if v := c.Query("topic"); v != "" {
			matches = matches.Where("LOWER(subject_topic.topic_name) LIKE ?", substring(v))
		}
		if v := c.Query("author_name"); v != "" {
			pattern := substring(v)
			matches = matches.Where("(LOWER(author.first_name) LIKE ? OR LOWER(author.last_name) LIKE ?)", pattern, pattern)
		}

		var theses []models.Thesis
		err := hydrated(db).
			Where("thesis_no IN (?)", matches).
			Order("thesis_no ASC").
			Find(&theses).Error
		if err != nil {
			respondStoreError(c, err, "")
			return
		}

		// Legacy contract: an empty result set is a 404, not an empty list.
		if len(theses) == 0 {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "No theses found matching the given criteria")
			return
		}

		respondData(c, http.StatusOK, theses)
	}
}

func GetThesis(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var thesis models.Thesis
		if err := hydrated(db).First(&thesis, "thesis_no = ?", id).Error; err != nil {
			respondStoreError(c, err, "Thesis not found")
			return
		}

		respondData(c, http.StatusOK, thesis)
	}
}

func CreateThesis(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateThesisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		thesisType := models.ThesisType(req.Type)
		if !thesisType.Valid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"type must be one of: Master, Doctorate, Specialization in Medicine, Proficiency in Art")
			return
		}

		submissionDate, err := time.Parse(dateLayout, req.SubmissionDate)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "submission_date must be formatted as YYYY-MM-DD")
			return
		}

		thesis := models.Thesis{
			Title:          req.Title,
			Abstract:       req.Abstract,
			AuthorID:       req.AuthorID,
			Year:           req.Year,
			Type:           thesisType,
			UniversityID:   req.UniversityID,
			InstituteID:    req.InstituteID,
			NumberOfPages:  req.NumberOfPages,
			SubmissionDate: submissionDate,
			LanguageID:     req.LanguageID,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := checkThesisReferences(tx, &thesis); err != nil {
				return err
			}
			return tx.Create(&thesis).Error
		})
		if err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusCreated, thesis)
	}
}

// UpdateThesis applies a sparse update to a thesis row. The whole update runs
// in one transaction; any constraint failure rolls back every field.
func UpdateThesis(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req UpdateThesisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		if req.Type != nil && !models.ThesisType(*req.Type).Valid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"type must be one of: Master, Doctorate, Specialization in Medicine, Proficiency in Art")
			return
		}

		var submissionDate time.Time
		if req.SubmissionDate != nil {
			parsed, err := time.Parse(dateLayout, *req.SubmissionDate)
			if err != nil {
				respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "submission_date must be formatted as YYYY-MM-DD")
				return
			}
			submissionDate = parsed
		}

		var thesis models.Thesis
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&thesis, "thesis_no = ?", id).Error; err != nil {
				return err
			}

			if req.Title != nil {
				thesis.Title = *req.Title
			}
			if req.Abstract != nil {
				thesis.Abstract = *req.Abstract
			}
			if req.AuthorID != nil {
				thesis.AuthorID = *req.AuthorID
			}
			if req.Year != nil {
				thesis.Year = *req.Year
			}
			if req.Type != nil {
				thesis.Type = models.ThesisType(*req.Type)
			}
			if req.UniversityID != nil {
				thesis.UniversityID = *req.UniversityID
			}
			if req.InstituteID != nil {
				thesis.InstituteID = *req.InstituteID
			}
			if req.NumberOfPages != nil {
				thesis.NumberOfPages = *req.NumberOfPages
			}
			if req.SubmissionDate != nil {
				thesis.SubmissionDate = submissionDate
			}
			if req.LanguageID != nil {
				thesis.LanguageID = *req.LanguageID
			}

			if err := checkThesisReferences(tx, &thesis); err != nil {
				return err
			}
			return tx.Save(&thesis).Error
		})
		if err != nil {
			respondStoreError(c, err, "Thesis not found")
			return
		}

		respondData(c, http.StatusOK, thesis)
	}
}

// DeleteThesis removes a thesis together with its keyword, supervisor and
// topic join rows.
func DeleteThesis(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.ThesisKeyword{}, "thesis_no = ?", id).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.ThesisSupervisor{}, "thesis_no = ?", id).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.ThesisTopic{}, "thesis_no = ?", id).Error; err != nil {
				return err
			}

			result := tx.Delete(&models.Thesis{}, "thesis_no = ?", id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Thesis not found")
			return
		}

		respondMessage(c, "Thesis deleted successfully")
	}
}

// checkThesisReferences verifies every foreign key on the thesis before it is
// written, so a dangling reference surfaces as a constraint error with the
// offending entity named.
func checkThesisReferences(tx *gorm.DB, thesis *models.Thesis) error {
	if err := tx.First(&models.Author{}, "author_id = ?", thesis.AuthorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errDanglingReference("author", thesis.AuthorID)
		}
		return err
	}
	if err := tx.First(&models.University{}, "university_id = ?", thesis.UniversityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errDanglingReference("university", thesis.UniversityID)
		}
		return err
	}
	if err := tx.First(&models.Institute{}, "institute_id = ?", thesis.InstituteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errDanglingReference("institute", thesis.InstituteID)
		}
		return err
	}
	if err := tx.First(&models.Language{}, "language_id = ?", thesis.LanguageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errDanglingReference("language", thesis.LanguageID)
		}
		return err
	}
	return nil
}
