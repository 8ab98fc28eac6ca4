package bolt

import (
	"context"
	"fmt"

	"mentorhub/internal/booking/domain/model"
	"mentorhub/internal/booking/domain/repository"
	"mentorhub/internal/shared/store"
)

// BookingRepository persists bookings in an ordered durable map keyed by
// booking id.
type BookingRepository struct {
	bookings store.Map[model.Booking]
}

// NewBookingRepository creates a booking repository over the given map
func NewBookingRepository(bookings store.Map[model.Booking]) *BookingRepository {
	return &BookingRepository{bookings: bookings}
}

// PutBooking stores the booking, replacing any prior record with the same id.
// Status transitions rely on this being a single atomic replacement.
func (r *BookingRepository) PutBooking(ctx context.Context, booking *model.Booking) error {
	if _, _, err := r.bookings.Insert(ctx, booking.ID, *booking); err != nil {
		return fmt.Errorf("failed to store booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by id
func (r *BookingRepository) GetBookingByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, ok, err := r.bookings.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking: %w", err)
	}
	if !ok {
		return nil, model.ErrBookingNotFound
	}
	return &booking, nil
}

// ListBookings returns all bookings in id order
func (r *BookingRepository) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	values, err := r.bookings.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	bookings := make([]*model.Booking, 0, len(values))
	for i := range values {
		bookings = append(bookings, &values[i])
	}
	return bookings, nil
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
