package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

// Thesis association sub-resources: keyword, topic and supervisor links are
// managed as explicit join rows so the supervisor flag stays addressable.

type AddThesisKeywordRequest struct {
	KeywordID int `json:"keyword_id" binding:"required"`
}

type AddThesisTopicRequest struct {
	TopicID int `json:"topic_id" binding:"required"`
}

type AddThesisSupervisorRequest struct {
	SupervisorID   int  `json:"supervisor_id" binding:"required"`
	IsCoSupervisor bool `json:"is_co_supervisor"`
}

func AddThesisKeyword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		thesisNo, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req AddThesisKeywordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		link := models.ThesisKeyword{ThesisNo: thesisNo, KeywordID: req.KeywordID}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := checkLinkEndpoints(tx, thesisNo, &models.Keyword{}, "keyword_id", req.KeywordID, "keyword"); err != nil {
				return err
			}
			return tx.Create(&link).Error
		})
		if err != nil {
			respondStoreError(c, err, "Thesis not found")
			return
		}

		respondData(c, http.StatusCreated, link)
	}
}

func RemoveThesisKeyword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		thesisNo, ok := paramID(c, "id")
		if !ok {
			return
		}
		keywordID, ok := paramID(c, "keyword_id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Delete(&models.ThesisKeyword{}, "thesis_no = ? AND keyword_id = ?", thesisNo, keywordID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Thesis keyword link not found")
			return
		}

		respondMessage(c, "Keyword removed from thesis")
	}
}

func AddThesisTopic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		thesisNo, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req AddThesisTopicRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		link := models.ThesisTopic{ThesisNo: thesisNo, TopicID: req.TopicID}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := checkLinkEndpoints(tx, thesisNo, &models.SubjectTopic{}, "topic_id", req.TopicID, "topic"); err != nil {
				return err
			}
			return tx.Create(&link).Error
		})
		if err != nil {
			respondStoreError(c, err, "Thesis not found")
			return
		}

		respondData(c, http.StatusCreated, link)
	}
}

func RemoveThesisTopic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		thesisNo, ok := paramID(c, "id")
		if !ok {
			return
		}
		topicID, ok := paramID(c, "topic_id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Delete(&models.ThesisTopic{}, "thesis_no = ? AND topic_id = ?", thesisNo, topicID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Thesis topic link not found")
			return
		}

		respondMessage(c, "Topic removed from thesis")
	}
}

func AddThesisSupervisor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		thesisNo, ok := paramID(c, "id")
		if !ok {
			return
		}

		var req AddThesisSupervisorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}

		link := models.ThesisSupervisor{
			ThesisNo:       thesisNo,
			SupervisorID:   req.SupervisorID,
			IsCoSupervisor: req.IsCoSupervisor,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := checkLinkEndpoints(tx, thesisNo, &models.Supervisor{}, "supervisor_id", req.SupervisorID, "supervisor"); err != nil {
				return err
			}
			return tx.Create(&link).Error
		})
		if err != nil {
			respondStoreError(c, err, "Thesis not found")
			return
		}

		respondData(c, http.StatusCreated, link)
	}
}

func RemoveThesisSupervisor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		thesisNo, ok := paramID(c, "id")
		if !ok {
			return
		}
		supervisorID, ok := paramID(c, "supervisor_id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Delete(&models.ThesisSupervisor{}, "thesis_no = ? AND supervisor_id = ?", thesisNo, supervisorID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			respondStoreError(c, err, "Thesis supervisor link not found")
			return
		}

		respondMessage(c, "Supervisor removed from thesis")
	}
}

// checkLinkEndpoints verifies both ends of a join row. A missing thesis is a
// 404 (the sub-resource lives under the thesis); a missing target is a
// constraint error.
func checkLinkEndpoints(tx *gorm.DB, thesisNo int, target interface{}, column string, id int, entity string) error {
	if err := tx.First(&models.Thesis{}, "thesis_no = ?", thesisNo).Error; err != nil {
		return err
	}
	if err := tx.First(target, column+" = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errDanglingReference(entity, id)
		}
		return err
	}
	return nil
}
