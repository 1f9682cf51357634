package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

type CreateInstituteRequest struct {
	Name         string `json:"name" binding:"required"`
	UniversityID int    `json:"university_id" binding:"required"`
}

type UpdateInstituteRequest struct {
	Name         *string `json:"name"`
	UniversityID *int    `json:"university_id"`
}

func CreateInstitute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateInstituteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		institute := models.Institute{
			Name:         req.Name,
			UniversityID: req.UniversityID,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// Verify the university exists before inserting
			if err := tx.First(&models.University{}, "university_id = ?", req.UniversityID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errDanglingReference("university", req.UniversityID)
				}
				return err
			}
			return tx.Create(&institute).Error
		})
		if err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusCreated, institute)
	}
}

// ListInstitutes supports optional name substring and exact university
// filters on top of skip/limit.
func ListInstitutes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)

		query := db.Order("institute_id ASC")

		if name := c.Query("name"); name != "" {
			query = query.Where("LOWER(name) LIKE ?", substring(name))
		}
		if universityID := c.Query("university_id"); universityID != "" {
			query = query.Where("university_id = ?", universityID)
		}

		var institutes []models.Institute
		if err := query.Offset(skip).Limit(limit).Find(&institutes).Error; err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusOK, institutes)
	}
}

func GetInstitute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var institute models.Institute
		if err := db.First(&institute, "institute_id = ?", id).Error; err != nil {
			respondStoreError(c, err, "Institute not found")
			return
		}

		respondData(c, http.StatusOK, institute)
	}
}

// GetInstitutesByUniversity lists the institutes of one university and
// reports 404 when it has none.
func GetInstitutesByUniversity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		universityID, ok := paramID(c, "university_id")
		if !ok {
			return
		}

		var institutes []models.Institute
		if err := db.Where("university_id = ?", universityID).Order("institute_id ASC").Find(&institutes).Error; err != nil {
			respondStoreError(c, err, "")
			return
		}

		if len(institutes) == 0 {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "No institutes found for this university")
			return
		}

		respondData(c, http.StatusOK, institutes)
	}
}

func UpdateInstitute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req UpdateInstituteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		var institute models.Institute
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&institute, "institute_id = ?", id).Error; err != nil {
				return err
			}

			if req.UniversityID != nil {
				if err := tx.First(&models.University{}, "university_id = ?", *req.UniversityID).Error; err != nil {
					if err == gorm.ErrRecordNotFound {
						return errDanglingReference("university", *req.UniversityID)
					}
					return err
				}
				institute.UniversityID = *req.UniversityID
			}
			if req.Name != nil {
				institute.Name = *req.Name
			}

			return tx.Save(&institute).Error
		})
		if err != nil {
			respondStoreError(c, err, "Institute not found")
			return
		}

		respondData(c, http.StatusOK, institute)
	}
}

// DeleteInstitute removes an institute; the database cascades the delete to
// its theses.
func DeleteInstitute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Delete(&models.Institute{}, "institute_id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Institute not found")
			return
		}

		respondMessage(c, "Institute deleted successfully")
	}
}
