package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medistay/services/stats"
	"medistay/utils"
)

// StatsHandler serves the operational statistics endpoint (admin only).
type StatsHandler struct {
	Reporter stats.Reporter
}

func NewStatsHandler(r stats.Reporter) *StatsHandler {
	return &StatsHandler{Reporter: r}
}

// BookingStats handles GET /api/bookings/stats.
func (h *StatsHandler) BookingStats(c *gin.Context) {
	snapshot, err := h.Reporter.Report(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
