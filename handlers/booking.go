package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "medistay/database/repository/booking"
	"medistay/models"
	"medistay/services/booking"
	"medistay/utils"
)

// BookingHandler serves the direct booking surface and the admin operations
// on persisted records.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	created, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings handles GET /api/bookings with optional status/syncSource filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	f := bookingRepo.ListFilter{
		Status:     c.Query("status"),
		SyncSource: c.Query("syncSource"),
	}
	bookings, err := h.Svc.ListBookings(c.Request.Context(), f)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
		return
	}

	updated, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CleanupDuplicates handles POST /api/bookings/cleanup-duplicates.
func (h *BookingHandler) CleanupDuplicates(c *gin.Context) {
	removed, err := h.Svc.CleanupDuplicates(c.Request.Context())
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "removed": removed})
}

// writeBookingError maps service/store errors onto HTTP statuses.
func writeBookingError(c *gin.Context, err error) {
	var svcErr *booking.ServiceError
	switch {
	case bookingRepo.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
	case bookingRepo.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, "booking already exists", err.Error())
	case bookingRepo.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case errors.As(err, &svcErr):
		if svcErr == booking.ErrPackageNotFound {
			utils.JSONError(c, http.StatusNotFound, "package not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
