package resp

import (
	"log/slog"
	"net/http"

	"github.com/Antdol/LittleLemonAPI/pkg/apperr"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}
func BadRequest(c *gin.Context, msg string) {
	Message(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msg})
}
func NotFound(c *gin.Context, msg string) {
	Message(c, http.StatusNotFound, msg)
}

// Error maps err onto a status code by kind. Unclassified errors are logged
// and reported as 500 without leaking their text.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		Message(c, http.StatusBadRequest, apperr.Message(err))
	case errors.Is(err, apperr.ErrForbidden):
		Message(c, http.StatusForbidden, apperr.Message(err))
	case errors.Is(err, apperr.ErrNotFound):
		Message(c, http.StatusNotFound, apperr.Message(err))
	case errors.Is(err, apperr.ErrConflict):
		Message(c, http.StatusConflict, apperr.Message(err))
	case errors.Is(err, gorm.ErrRecordNotFound):
		Message(c, http.StatusNotFound, "not found")
	default:
		ServerError(c, err)
	}
}

func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	Message(c, http.StatusInternalServerError, "internal server error")
}
