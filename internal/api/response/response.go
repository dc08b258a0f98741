package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The board client keys off a flat {success, error} envelope, so responses
// are built as plain maps rather than a wrapper struct.

// Success returns a bare {"success":true}.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SuccessExtras returns {"success":true} merged with extras.
func SuccessExtras(c *gin.Context, extras gin.H) {
	body := gin.H{"success": true}
	for k, v := range extras {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error returns {"success":false,"error":message} with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}
