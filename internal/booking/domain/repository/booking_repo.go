package repository

import (
	"context"

	"mentorhub/internal/booking/domain/model"
)

// BookingRepository defines persistence operations for bookings.
// Implementations return model.ErrBookingNotFound when a booking is absent.
type BookingRepository interface {
	// PutBooking stores the booking, replacing any prior record with the
	// same id in a single atomic write.
	PutBooking(ctx context.Context, booking *model.Booking) error

	// GetBookingByID retrieves a booking by id.
	GetBookingByID(ctx context.Context, id string) (*model.Booking, error)

	// ListBookings returns all bookings in id order.
	ListBookings(ctx context.Context) ([]*model.Booking, error)
}
