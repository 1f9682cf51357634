package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

type CreateUniversityRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateUniversityRequest struct {
	Name *string `json:"name"`
}

func CreateUniversity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUniversityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		university := models.University{Name: req.Name}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&university).Error
		}); err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusCreated, university)
	}
}

func ListUniversities(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)

		query := db.Order("university_id ASC")

		// Optional case-insensitive name filter
		if name := c.Query("name"); name != "" {
			query = query.Where("LOWER(name) LIKE ?", substring(name))
		}

		var universities []models.University
		if err := query.Offset(skip).Limit(limit).Find(&universities).Error; err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusOK, universities)
	}
}

func GetUniversity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var university models.University
		if err := db.First(&university, "university_id = ?", id).Error; err != nil {
			respondStoreError(c, err, "University not found")
			return
		}

		respondData(c, http.StatusOK, university)
	}
}

func UpdateUniversity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req UpdateUniversityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		var university models.University
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&university, "university_id = ?", id).Error; err != nil {
				return err
			}

			if req.Name != nil {
				university.Name = *req.Name
			}

			return tx.Save(&university).Error
		})
		if err != nil {
			respondStoreError(c, err, "University not found")
			return
		}

		respondData(c, http.StatusOK, university)
	}
}

// DeleteUniversity removes a university; the database cascades the delete to
// its institutes and theses.
func DeleteUniversity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Delete(&models.University{}, "university_id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "University not found")
			return
		}

		respondMessage(c, "University deleted successfully")
	}
}
