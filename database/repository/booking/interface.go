package bookingRepo

import (
	"context"

	"ragtask/models"
)

// BookingRepository defines persistence operations for completed bookings.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetBookingsBySession(ctx context.Context, sessionID string) ([]models.Booking, error)
}
