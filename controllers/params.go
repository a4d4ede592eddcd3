package controllers

import (
	"strconv"

	"github.com/Antdol/LittleLemonAPI/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// idParam parses :id. Non-numeric ids never match a row, so they are 404s.
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.NotFound("not found")
	}
	return uint(id), nil
}
