package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medistay/models"
	syncSvc "medistay/services/sync"
	"medistay/utils"
)

// SyncHandler serves the reconciliation endpoints (admin only).
type SyncHandler struct {
	Svc syncSvc.SyncService
}

func NewSyncHandler(svc syncSvc.SyncService) *SyncHandler {
	return &SyncHandler{Svc: svc}
}

// SyncBookings handles POST /api/bookings/sync. The envelope must carry a
// "bookings" array; anything else is rejected before the store is touched.
// Per-item failures come back in the report with an overall 200: the batch
// mechanism succeeding is not the same as every item succeeding.
func (h *SyncHandler) SyncBookings(c *gin.Context) {
	var input struct {
		Bookings *[]models.LocalBooking `json:"bookings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid sync payload", err.Error())
		return
	}
	if input.Bookings == nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid sync payload", "bookings must be an array")
		return
	}

	entries := *input.Bookings

	var report *models.SyncReport
	var err error
	if c.Query("mode") == "bulk" {
		report, err = h.Svc.BulkImport(c.Request.Context(), entries)
	} else {
		report, _, err = h.Svc.SyncBatch(c.Request.Context(), entries)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "sync failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"message":    syncMessage(report),
		"synced":     report.Synced,
		"duplicates": report.Duplicates,
		"errors":     report.Errors,
	})
}

func syncMessage(r *models.SyncReport) string {
	switch {
	case r.Synced == 0 && r.Duplicates == 0 && len(r.Errors) == 0:
		return "nothing to sync"
	case len(r.Errors) > 0:
		return "sync completed with errors"
	default:
		return "sync completed"
	}
}

// LastSyncReport handles GET /api/bookings/sync/last.
func (h *SyncHandler) LastSyncReport(c *gin.Context) {
	report, err := h.Svc.LastReport(c.Request.Context())
	if errors.Is(err, syncSvc.ErrNoReport) {
		utils.JSONError(c, http.StatusNotFound, "no sync report", "no reconciliation has run yet")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load sync report", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
