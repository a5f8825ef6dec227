package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalError logs the real failure server-side and returns a generic
// message. Diagnostic detail is only attached in debug mode; release builds
// never expose it.
func internalError(c *gin.Context, err error, msg string) {
	log.Printf("%s: %v", msg, err)
	resp := gin.H{"error": msg}
	if gin.IsDebugging() {
		resp["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}
