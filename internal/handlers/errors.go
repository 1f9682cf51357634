package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondStoreError maps a store failure onto the error taxonomy. Mutations
// run inside db.Transaction, so by the time an error reaches here the
// transaction has already been rolled back.
func respondStoreError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", notFoundMessage)
	case errors.Is(err, gorm.ErrForeignKeyViolated) || isForeignKeyError(err):
		respondError(c, http.StatusBadRequest, "FOREIGN_KEY_VIOLATION", err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		respondError(c, http.StatusBadRequest, "UNIQUE_VIOLATION", err.Error())
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		respondError(c, http.StatusBadRequest, "CHECK_VIOLATION", err.Error())
	default:
		log.Printf("store error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected database error")
	}
}

// isForeignKeyError catches FK failures the dialect translator misses
// (sqlite reports them as plain constraint errors).
func isForeignKeyError(err error) bool {
	return strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY")
}

// errDanglingReference marks a write that points at a missing parent row.
func errDanglingReference(entity string, id int) error {
	return &danglingReferenceError{entity: entity, id: id}
}

type danglingReferenceError struct {
	entity string
	id     int
}

func (e *danglingReferenceError) Error() string {
	return "referenced " + e.entity + " " + strconv.Itoa(e.id) + " does not exist"
}

func (e *danglingReferenceError) Is(target error) bool {
	return target == gorm.ErrForeignKeyViolated
}

// errReferenced marks a delete blocked by dependent rows.
func errReferenced(entity string) error {
	return &referencedError{entity: entity}
}

type referencedError struct {
	entity string
}

func (e *referencedError) Error() string {
	return e.entity + " is still referenced by existing theses and cannot be deleted"
}

func (e *referencedError) Is(target error) bool {
	return target == gorm.ErrForeignKeyViolated
}
