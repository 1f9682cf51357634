package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

type CreateSupervisorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Title     string `json:"title"`
}

type UpdateSupervisorRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Title     *string `json:"title"`
}

func CreateSupervisor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSupervisorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		supervisor := models.Supervisor{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Title:     req.Title,
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&supervisor).Error
		}); err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusCreated, supervisor)
	}
}

func ListSupervisors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)

		var supervisors []models.Supervisor
		if err := db.Offset(skip).Limit(limit).Order("supervisor_id ASC").Find(&supervisors).Error; err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusOK, supervisors)
	}
}

func GetSupervisor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var supervisor models.Supervisor
		if err := db.First(&supervisor, "supervisor_id = ?", id).Error; err != nil {
			respondStoreError(c, err, "Supervisor not found")
			return
		}

		respondData(c, http.StatusOK, supervisor)
	}
}

func UpdateSupervisor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req UpdateSupervisorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		var supervisor models.Supervisor
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&supervisor, "supervisor_id = ?", id).Error; err != nil {
				return err
			}

			if req.FirstName != nil {
				supervisor.FirstName = *req.FirstName
			}
			if req.LastName != nil {
				supervisor.LastName = *req.LastName
			}
			if req.Title != nil {
				supervisor.Title = *req.Title
			}

			return tx.Save(&supervisor).Error
		})
		if err != nil {
			respondStoreError(c, err, "Supervisor not found")
			return
		}

		respondData(c, http.StatusOK, supervisor)
	}
}

// DeleteSupervisor refuses to remove a supervisor that is still attached to
// a thesis.
func DeleteSupervisor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var references int64
			if err := tx.Model(&models.ThesisSupervisor{}).Where("supervisor_id = ?", id).Count(&references).Error; err != nil {
				return err
			}
			if references > 0 {
				return errReferenced("supervisor")
			}

			result := tx.Delete(&models.Supervisor{}, "supervisor_id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Supervisor not found")
			return
		}

		respondMessage(c, "Supervisor deleted successfully")
	}
}
