package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "ragtask/database/repository/booking"
	"ragtask/utils"
)

// BookingHandler exposes read access to persisted bookings.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// GetBooking returns one booking by its identifier.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")

	booking, err := h.Repo.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListSessionBookings returns the bookings created within a session,
// newest first.
func (h *BookingHandler) ListSessionBookings(c *gin.Context) {
	sessionID := c.Param("sessionID")

	bookings, err := h.Repo.GetBookingsBySession(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "bookings": bookings})
}
