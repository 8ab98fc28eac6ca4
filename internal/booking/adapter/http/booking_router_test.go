package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mentorhub/internal/booking/domain/model"
	"mentorhub/internal/booking/usecase"
	apperrors "mentorhub/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingUsecase struct {
	mock.Mock
}

func (m *mockBookingUsecase) Create(ctx context.Context, req usecase.CreateBookingRequest) (*model.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *mockBookingUsecase) GetByID(ctx context.Context, bookingID string) (*model.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *mockBookingUsecase) List(ctx context.Context) ([]*model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *mockBookingUsecase) Accept(ctx context.Context, bookingID string) (*model.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *mockBookingUsecase) Reject(ctx context.Context, bookingID string) (*model.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *mockBookingUsecase) Cancel(ctx context.Context, bookingID string) (*model.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *mockBookingUsecase) Reschedule(ctx context.Context, req usecase.RescheduleRequest) (*model.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

var _ usecase.BookingUsecaseInterface = (*mockBookingUsecase)(nil)

func newTestApp(uc usecase.BookingUsecaseInterface) *fiber.App {
	app := fiber.New()
	allowAnyRole := func(c *fiber.Ctx) error { return c.Next() }
	NewBookingHTTPHandler(uc).SetupBookingRoutes(app.Group("/api/v1"), allowAnyRole)
	return app
}

func TestCreate_Created(t *testing.T) {
	uc := &mockBookingUsecase{}
	app := newTestApp(uc)

	booking := &model.Booking{ID: "b1", Status: model.StatusAccepted}
	uc.On("Create", mock.Anything, mock.MatchedBy(func(req usecase.CreateBookingRequest) bool {
		return req.MentorID == "m1" && req.MenteeID == "e1" && req.Date == "2024-05-01"
	})).Return(booking, nil)

	body := bytes.NewBufferString(`{"mentorId":"m1","menteeId":"e1","date":"2024-05-01","startTime":"10:00","endTime":"11:00"}`)
	req := httptest.NewRequest("POST", "/api/v1/bookings", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreate_BadBody(t *testing.T) {
	uc := &mockBookingUsecase{}
	app := newTestApp(uc)

	req := httptest.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGet_NotFound(t *testing.T) {
	uc := &mockBookingUsecase{}
	app := newTestApp(uc)

	uc.On("GetByID", mock.Anything, "nope").Return(nil, apperrors.NewNotFoundError("booking"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/bookings/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCancel_InvalidTransitionMapsToConflict(t *testing.T) {
	uc := &mockBookingUsecase{}
	app := newTestApp(uc)

	uc.On("Cancel", mock.Anything, "b1").
		Return(nil, apperrors.NewInvalidTransitionError("booking is in a terminal status"))

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/bookings/b1/cancel", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAccept_ReturnsBooking(t *testing.T) {
	uc := &mockBookingUsecase{}
	app := newTestApp(uc)

	booking := &model.Booking{ID: "b1", Status: model.StatusAccepted}
	uc.On("Accept", mock.Anything, "b1").Return(booking, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/bookings/b1/accept", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload model.Booking
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "b1", payload.ID)
	assert.Equal(t, model.StatusAccepted, payload.Status)
}

func TestReschedule_PassesSlotAndID(t *testing.T) {
	uc := &mockBookingUsecase{}
	app := newTestApp(uc)

	booking := &model.Booking{ID: "b1", Status: model.StatusRescheduled, Date: "2024-05-02"}
	uc.On("Reschedule", mock.Anything, mock.MatchedBy(func(req usecase.RescheduleRequest) bool {
		return req.BookingID == "b1" && req.Date == "2024-05-02" &&
			req.StartTime == "09:00" && req.EndTime == "10:00"
	})).Return(booking, nil)

	body := bytes.NewBufferString(`{"date":"2024-05-02","startTime":"09:00","endTime":"10:00"}`)
	req := httptest.NewRequest("POST", "/api/v1/bookings/b1/reschedule", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReject_SitsBehindMentorGuard(t *testing.T) {
	uc := &mockBookingUsecase{}
	app := fiber.New()
	denyRole := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
	NewBookingHTTPHandler(uc).SetupBookingRoutes(app.Group("/api/v1"), denyRole)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/bookings/b1/reject", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	uc.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything)

	// Cancelling is open to either party and must bypass the guard.
	uc.On("Cancel", mock.Anything, "b1").
		Return(&model.Booking{ID: "b1", Status: model.StatusCancelled}, nil)

	resp, err = app.Test(httptest.NewRequest("POST", "/api/v1/bookings/b1/cancel", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestList_ReturnsAll(t *testing.T) {
	uc := &mockBookingUsecase{}
	app := newTestApp(uc)

	bookings := []*model.Booking{
		{ID: "b1", Status: model.StatusAccepted},
		{ID: "b2", Status: model.StatusCancelled},
	}
	uc.On("List", mock.Anything).Return(bookings, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/bookings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload []model.Booking
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload, 2)
}
