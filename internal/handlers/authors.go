package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

type CreateAuthorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type UpdateAuthorRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func CreateAuthor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAuthorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		author := models.Author{
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&author).Error
		}); err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusCreated, author)
	}
}

func ListAuthors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)

		var authors []models.Author
		if err := db.Offset(skip).Limit(limit).Order("author_id ASC").Find(&authors).Error; err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusOK, authors)
	}
}

func GetAuthor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var author models.Author
		if err := db.First(&author, "author_id = ?", id).Error; err != nil {
			respondStoreError(c, err, "Author not found")
			return
		}

		respondData(c, http.StatusOK, author)
	}
}

func UpdateAuthor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req UpdateAuthorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		var author models.Author
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&author, "author_id = ?", id).Error; err != nil {
				return err
			}

			if req.FirstName != nil {
				author.FirstName = *req.FirstName
			}
			if req.LastName != nil {
				author.LastName = *req.LastName
			}

			return tx.Save(&author).Error
		})
		if err != nil {
			respondStoreError(c, err, "Author not found")
			return
		}

		respondData(c, http.StatusOK, author)
	}
}

// DeleteAuthor removes an author; the database cascades the delete to the
// author's theses and their join rows.
func DeleteAuthor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Delete(&models.Author{}, "author_id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Author not found")
			return
		}

		respondMessage(c, "Author deleted successfully")
	}
}
