package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olupoagric/storefront/internal/service/content"
)

// Services returns the static services page content.
func Services(c *gin.Context) {
	c.JSON(http.StatusOK, content.Services())
}
