package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const pageTitle = "Pawfect"

// IndexHandler handles GET / by rendering the search page.
func IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": pageTitle})
}
