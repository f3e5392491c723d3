package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medistay/utils"
)

// Health handles GET /health using the background monitor's latest snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
