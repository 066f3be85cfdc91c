package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles GET /message?format=, a standalone demo that
// switches the response representation on the format parameter. The
// "html" branch intentionally returns an HTML error body.
func MessageHandler(c *gin.Context) {
	switch strings.ToLower(c.Query("format")) {
	case "json":
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Hello!"})
	case "string":
		c.String(http.StatusOK, "Hello!")
	case "integer":
		c.JSON(http.StatusOK, 100)
	case "double":
		c.JSON(http.StatusOK, 99.99)
	case "html":
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte("<h1>Error: Invalid Format</h1>"))
	default:
		c.String(http.StatusBadRequest, "Unsupported format. Use json, string, integer, double, or html.")
	}
}
