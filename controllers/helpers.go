package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// the 400 response itself and returns false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts RFC 3339 timestamps and plain dates (2006-01-02).
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// currentUserID returns the authenticated user id, nil on public routes.
func currentUserID(c *gin.Context) *uint {
	value, exists := c.Get("userID")
	if !exists {
		return nil
	}
	id, ok := value.(uint)
	if !ok {
		return nil
	}
	return &id
}
