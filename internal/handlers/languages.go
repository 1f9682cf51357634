package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

type CreateLanguageRequest struct {
	LanguageName string `json:"language_name" binding:"required"`
}

type UpdateLanguageRequest struct {
	LanguageName *string `json:"language_name"`
}

func CreateLanguage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateLanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		language := models.Language{LanguageName: req.LanguageName}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&language).Error
		}); err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusCreated, language)
	}
}

func ListLanguages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)

		var languages []models.Language
		if err := db.Offset(skip).Limit(limit).Order("language_id ASC").Find(&languages).Error; err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusOK, languages)
	}
}

func GetLanguage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var language models.Language
		if err := db.First(&language, "language_id = ?", id).Error; err != nil {
			respondStoreError(c, err, "Language not found")
			return
		}

		respondData(c, http.StatusOK, language)
	}
}

func UpdateLanguage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req UpdateLanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		var language models.Language
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&language, "language_id = ?", id).Error; err != nil {
				return err
			}

			if req.LanguageName != nil {
				language.LanguageName = *req.LanguageName
			}

			return tx.Save(&language).Error
		})
		if err != nil {
			respondStoreError(c, err, "Language not found")
			return
		}

		respondData(c, http.StatusOK, language)
	}
}

// DeleteLanguage refuses to remove a language that is still referenced by a
// thesis; there is no cascade on the language relation.
func DeleteLanguage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var references int64
			if err := tx.Model(&models.Thesis{}).Where("language_id = ?", id).Count(&references).Error; err != nil {
				return err
			}
			if references > 0 {
				return errReferenced("language")
			}

			result := tx.Delete(&models.Language{}, "language_id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Language not found")
			return
		}

		respondMessage(c, "Language deleted successfully")
	}
}
