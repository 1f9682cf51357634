package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

type CreateKeywordRequest struct {
	KeywordName string `json:"keyword_name" binding:"required"`
}

type UpdateKeywordRequest struct {
	KeywordName *string `json:"keyword_name"`
}

func CreateKeyword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateKeywordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		keyword := models.Keyword{KeywordName: req.KeywordName}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&keyword).Error
		}); err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusCreated, keyword)
	}
}

func ListKeywords(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)

		query := db.Order("keyword_id ASC")

		if name := c.Query("name"); name != "" {
			query = query.Where("LOWER(keyword_name) LIKE ?", substring(name))
		}

		var keywords []models.Keyword
		if err := query.Offset(skip).Limit(limit).Find(&keywords).Error; err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusOK, keywords)
	}
}

func GetKeyword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var keyword models.Keyword
		if err := db.First(&keyword, "keyword_id = ?", id).Error; err != nil {
			respondStoreError(c, err, "Keyword not found")
			return
		}

		respondData(c, http.StatusOK, keyword)
	}
}

func UpdateKeyword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req UpdateKeywordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		var keyword models.Keyword
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&keyword, "keyword_id = ?", id).Error; err != nil {
				return err
			}

			if req.KeywordName != nil {
				keyword.KeywordName = *req.KeywordName
			}

			return tx.Save(&keyword).Error
		})
		if err != nil {
			respondStoreError(c, err, "Keyword not found")
			return
		}

		respondData(c, http.StatusOK, keyword)
	}
}

// DeleteKeyword refuses to remove a keyword that is still attached to a
// thesis.
func DeleteKeyword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var references int64
			if err := tx.Model(&models.ThesisKeyword{}).Where("keyword_id = ?", id).Count(&references).Error; err != nil {
				return err
			}
			if references > 0 {
				return errReferenced("keyword")
			}

			result := tx.Delete(&models.Keyword{}, "keyword_id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Keyword not found")
			return
		}

		respondMessage(c, "Keyword deleted successfully")
	}
}
