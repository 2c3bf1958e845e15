package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// internalError logs the cause and answers with a generic body. The detail
// stays server-side.
func internalError(c *gin.Context, err error) {
	log.WithFields(log.Fields{
		"path":   c.FullPath(),
		"method": c.Request.Method,
	}).WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}
