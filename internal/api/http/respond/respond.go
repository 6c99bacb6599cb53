package respond

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasktrack/tracker-backend/internal/apperr"
	"github.com/tasktrack/tracker-backend/internal/logging"
)

// Error maps err onto the API error taxonomy. Validation messages and the
// not-found message are returned to the client; anything else is logged and
// answered with the generic storeMsg.
func Error(c *gin.Context, op, notFoundMsg, storeMsg string, err error) {
	if v, ok := apperr.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": v.Message})
		return
	}
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}

	logging.NewLogger(c.Request.Context()).LogError(op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": storeMsg})
}

// BindJSON decodes the request body into obj. An empty body leaves obj at its
// zero value so required-field checks report the missing field. On a malformed
// body it writes a 400 and returns false.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}
