package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 100

// paramID parses the :id route parameter. Writes a 400 response and returns
// false when it is not a positive integer.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

// pagination reads skip/limit query parameters with the legacy defaults.
func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", ""))
	if err != nil || limit <= 0 {
		limit = defaultListLimit
	}
	return skip, limit
}

// substring builds a case-insensitive LIKE pattern.
func substring(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
