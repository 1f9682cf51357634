package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

type CreateTopicRequest struct {
	TopicName string `json:"topic_name" binding:"required"`
}

type UpdateTopicRequest struct {
	TopicName *string `json:"topic_name"`
}

func CreateTopic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTopicRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		topic := models.SubjectTopic{TopicName: req.TopicName}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&topic).Error
		}); err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusCreated, topic)
	}
}

func ListTopics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)

		query := db.Order("topic_id ASC")

		if name := c.Query("name"); name != "" {
			query = query.Where("LOWER(topic_name) LIKE ?", substring(name))
		}

		var topics []models.SubjectTopic
		if err := query.Offset(skip).Limit(limit).Find(&topics).Error; err != nil {
			respondStoreError(c, err, "")
			return
		}

		respondData(c, http.StatusOK, topics)
	}
}

func GetTopic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var topic models.SubjectTopic
		if err := db.First(&topic, "topic_id = ?", id).Error; err != nil {
			respondStoreError(c, err, "Topic not found")
			return
		}

		respondData(c, http.StatusOK, topic)
	}
}

func UpdateTopic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req UpdateTopicRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		var topic models.SubjectTopic
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&topic, "topic_id = ?", id).Error; err != nil {
				return err
			}

			if req.TopicName != nil {
				topic.TopicName = *req.TopicName
			}

			return tx.Save(&topic).Error
		})
		if err != nil {
			respondStoreError(c, err, "Topic not found")
			return
		}

		respondData(c, http.StatusOK, topic)
	}
}

// DeleteTopic refuses to remove a topic that is still attached to a thesis.
func DeleteTopic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var references int64
			if err := tx.Model(&models.ThesisTopic{}).Where("topic_id = ?", id).Count(&references).Error; err != nil {
				return err
			}
			if references > 0 {
				return errReferenced("topic")
			}

			result := tx.Delete(&models.SubjectTopic{}, "topic_id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Topic not found")
			return
		}

		respondMessage(c, "Topic deleted successfully")
	}
}
