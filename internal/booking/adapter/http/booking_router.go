package http

import (
	"mentorhub/internal/booking/usecase"
	apperrors "mentorhub/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
)

// BookingHTTPHandler handles HTTP requests for the booking ledger
type BookingHTTPHandler struct {
	usecase usecase.BookingUsecaseInterface
}

// NewBookingHTTPHandler creates a new booking HTTP handler
func NewBookingHTTPHandler(uc usecase.BookingUsecaseInterface) *BookingHTTPHandler {
	return &BookingHTTPHandler{usecase: uc}
}

// SetupBookingRoutes registers booking routes on the given router. All routes
// require an authenticated caller, so the router is expected to carry the
// auth middleware already. Rejecting is the mentor declining a slot, so that
// route additionally carries the requireMentor guard; every other action is
// open to either party.
func (h *BookingHTTPHandler) SetupBookingRoutes(router fiber.Router, requireMentor fiber.Handler) {
	router.Post("/bookings", h.Create)
	router.Get("/bookings", h.List)
	router.Get("/bookings/:bookingId", h.Get)
	router.Post("/bookings/:bookingId/accept", h.Accept)
	router.Post("/bookings/:bookingId/reject", requireMentor, h.Reject)
	router.Post("/bookings/:bookingId/cancel", h.Cancel)
	router.Post("/bookings/:bookingId/reschedule", h.Reschedule)
}

// Create handles booking creation
func (h *BookingHTTPHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	booking, err := h.usecase.Create(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// List returns all bookings
func (h *BookingHTTPHandler) List(c *fiber.Ctx) error {
	bookings, err := h.usecase.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(bookings)
}

// Get returns a booking by id
func (h *BookingHTTPHandler) Get(c *fiber.Ctx) error {
	booking, err := h.usecase.GetByID(c.Context(), c.Params("bookingId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(booking)
}

// Accept confirms a booking
func (h *BookingHTTPHandler) Accept(c *fiber.Ctx) error {
	booking, err := h.usecase.Accept(c.Context(), c.Params("bookingId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(booking)
}

// Reject declines a booking
func (h *BookingHTTPHandler) Reject(c *fiber.Ctx) error {
	booking, err := h.usecase.Reject(c.Context(), c.Params("bookingId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(booking)
}

// Cancel withdraws a booking
func (h *BookingHTTPHandler) Cancel(c *fiber.Ctx) error {
	booking, err := h.usecase.Cancel(c.Context(), c.Params("bookingId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(booking)
}

// Reschedule moves a booking to a new slot
func (h *BookingHTTPHandler) Reschedule(c *fiber.Ctx) error {
	var req usecase.RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	req.BookingID = c.Params("bookingId")

	booking, err := h.usecase.Reschedule(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(booking)
}

func writeError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
