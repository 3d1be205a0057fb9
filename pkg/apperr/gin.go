package apperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Write maps err onto the stable JSON error shape and writes it.
// Internal and upstream errors are logged with context; validation and auth
// failures are the caller's fault and stay quiet.
func Write(c *gin.Context, err error) {
	ae := From(err)
	if ae.Status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(ae.Status, gin.H{
		"success": false,
		"message": ae.Message,
		"code":    ae.Code,
	})
}
