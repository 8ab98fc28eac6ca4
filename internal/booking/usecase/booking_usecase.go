package usecase

import (
	"context"
	"errors"
	"time"

	authmodel "mentorhub/internal/auth/domain/model"
	authrepo "mentorhub/internal/auth/domain/repository"
	"mentorhub/internal/booking/domain/model"
	"mentorhub/internal/booking/domain/repository"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/eventbus"
	"mentorhub/internal/shared/types"

	"github.com/google/uuid"
)

// BookingUsecaseInterface defines the contract for the booking ledger.
type BookingUsecaseInterface interface {
	Create(ctx context.Context, req CreateBookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	Accept(ctx context.Context, bookingID string) (*model.Booking, error)
	Reject(ctx context.Context, bookingID string) (*model.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*model.Booking, error)
	Reschedule(ctx context.Context, req RescheduleRequest) (*model.Booking, error)
}

// CreateBookingRequest represents the booking creation request
type CreateBookingRequest struct {
	MentorID  string `json:"mentorId"`
	MenteeID  string `json:"menteeId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RescheduleRequest carries the replacement slot for a booking
type RescheduleRequest struct {
	BookingID string `json:"-"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingUsecase implements the booking ledger over the durable store.
type BookingUsecase struct {
	bookings repository.BookingRepository
	users    authrepo.UserRepository
	events   eventbus.EventBusInterface
}

// NewBookingUsecase creates a new instance of BookingUsecase.
func NewBookingUsecase(
	bookings repository.BookingRepository,
	users authrepo.UserRepository,
	events eventbus.EventBusInterface,
) *BookingUsecase {
	return &BookingUsecase{
		bookings: bookings,
		users:    users,
		events:   events,
	}
}

// Create validates both participants and stores a new booking. The booking
// starts out accepted; a mentee request is only recorded once the mentor has
// confirmed the slot. Existence checks run immediately before the single
// write to keep the unguarded window as small as possible.
func (uc *BookingUsecase) Create(ctx context.Context, req CreateBookingRequest) (*model.Booking, error) {
	booking := &model.Booking{
		ID:        uuid.New().String(),
		MentorID:  req.MentorID,
		MenteeID:  req.MenteeID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    model.StatusAccepted,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: types.None[time.Time](),
	}

	if err := booking.ValidateFields(); err != nil {
		return nil, apperrors.NewValidationError(err.Error()).WithComponent("booking")
	}

	if err := uc.checkParticipant(ctx, req.MentorID, authmodel.RoleMentor); err != nil {
		return nil, err
	}
	if err := uc.checkParticipant(ctx, req.MenteeID, authmodel.RoleMentee); err != nil {
		return nil, err
	}

	if err := uc.bookings.PutBooking(ctx, booking); err != nil {
		return nil, apperrors.WrapError(err, "failed to create booking")
	}

	uc.publish(ctx, eventbus.EventTypeBookingCreated, booking.ID)
	return booking, nil
}

// GetByID retrieves a booking by id.
func (uc *BookingUsecase) GetByID(ctx context.Context, bookingID string) (*model.Booking, error) {
	if bookingID == "" {
		return nil, apperrors.NewValidationError("booking ID is required")
	}

	booking, err := uc.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, model.ErrBookingNotFound) {
			return nil, apperrors.NewNotFoundError("booking").WithDetail("bookingId", bookingID)
		}
		return nil, apperrors.WrapError(err, "failed to read booking")
	}
	return booking, nil
}

// List returns all bookings in id order.
func (uc *BookingUsecase) List(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := uc.bookings.ListBookings(ctx)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to list bookings")
	}
	return bookings, nil
}

// Accept confirms the booking slot.
func (uc *BookingUsecase) Accept(ctx context.Context, bookingID string) (*model.Booking, error) {
	return uc.transition(ctx, bookingID, model.StatusAccepted, nil)
}

// Reject declines the booking before the slot occurs. Terminal.
func (uc *BookingUsecase) Reject(ctx context.Context, bookingID string) (*model.Booking, error) {
	return uc.transition(ctx, bookingID, model.StatusRejected, nil)
}

// Cancel withdraws the booking. Terminal.
func (uc *BookingUsecase) Cancel(ctx context.Context, bookingID string) (*model.Booking, error) {
	return uc.transition(ctx, bookingID, model.StatusCancelled, nil)
}

// Reschedule proposes a new slot for the booking, replacing its date and
// time fields.
func (uc *BookingUsecase) Reschedule(ctx context.Context, req RescheduleRequest) (*model.Booking, error) {
	if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, apperrors.NewValidationError(model.ErrEmptySchedule.Error()).WithComponent("booking")
	}

	return uc.transition(ctx, req.BookingID, model.StatusRescheduled, func(b *model.Booking) {
		b.Date = req.Date
		b.StartTime = req.StartTime
		b.EndTime = req.EndTime
	})
}

// transition re-reads the booking, validates the status change and writes the
// updated record back as a single replacement. The mutate hook applies extra
// field changes after the transition is validated.
func (uc *BookingUsecase) transition(
	ctx context.Context,
	bookingID string,
	next model.Status,
	mutate func(*model.Booking),
) (*model.Booking, error) {
	if bookingID == "" {
		return nil, apperrors.NewValidationError("booking ID is required")
	}

	booking, err := uc.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, model.ErrBookingNotFound) {
			return nil, apperrors.NewNotFoundError("booking").WithDetail("bookingId", bookingID)
		}
		return nil, apperrors.WrapError(err, "failed to read booking")
	}

	prev := booking.Status
	if err := booking.Transition(next, time.Now().UTC()); err != nil {
		return nil, apperrors.NewInvalidTransitionError(err.Error()).
			WithComponent("booking").
			WithDetail("from", string(prev)).
			WithDetail("to", string(next))
	}
	if mutate != nil {
		mutate(booking)
	}

	if err := uc.bookings.PutBooking(ctx, booking); err != nil {
		return nil, apperrors.WrapError(err, "failed to store booking")
	}

	uc.publish(ctx, eventbus.EventTypeBookingStatusChanged, booking.ID)
	return booking, nil
}

// checkParticipant verifies the referenced user exists and holds the expected
// role.
func (uc *BookingUsecase) checkParticipant(ctx context.Context, userID string, role authmodel.Role) error {
	user, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, authmodel.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user").WithDetail("userId", userID)
		}
		return apperrors.WrapError(err, "failed to read user")
	}
	if user.Role != role {
		return apperrors.NewValidationError("user "+user.Username+" is not a "+string(role)).
			WithComponent("booking")
	}
	return nil
}

func (uc *BookingUsecase) publish(ctx context.Context, eventType, bookingID string) {
	if uc.events == nil {
		return
	}
	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventType, bookingID, "booking-usecase"))
}

// Ensure BookingUsecase implements BookingUsecaseInterface
var _ BookingUsecaseInterface = (*BookingUsecase)(nil)
