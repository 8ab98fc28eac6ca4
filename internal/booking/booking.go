package booking

import (
	"fmt"

	authrepo "mentorhub/internal/auth/domain/repository"
	bookinghttp "mentorhub/internal/booking/adapter/http"
	"mentorhub/internal/booking/adapter/persistence/bolt"
	"mentorhub/internal/booking/domain/model"
	"mentorhub/internal/booking/domain/repository"
	"mentorhub/internal/booking/usecase"
	"mentorhub/internal/shared/eventbus"
	"mentorhub/internal/shared/store"

	"github.com/gofiber/fiber/v2"
	"go.etcd.io/bbolt"
)

// BookingModule represents the complete booking ledger module
type BookingModule struct {
	repository repository.BookingRepository
	usecase    usecase.BookingUsecaseInterface
	handler    *bookinghttp.BookingHTTPHandler
}

// NewBookingModule creates a new booking module instance backed by the given
// durable store. Participant lookups go through the user repository owned by
// the auth module.
func NewBookingModule(db *bbolt.DB, users authrepo.UserRepository, events eventbus.EventBusInterface) (*BookingModule, error) {
	bookingMap, err := store.NewBoltMap[model.Booking](db, "bookings")
	if err != nil {
		return nil, fmt.Errorf("failed to open bookings namespace: %w", err)
	}

	bookingRepo := bolt.NewBookingRepository(bookingMap)
	bookingUsecase := usecase.NewBookingUsecase(bookingRepo, users, events)
	handler := bookinghttp.NewBookingHTTPHandler(bookingUsecase)

	return &BookingModule{
		repository: bookingRepo,
		usecase:    bookingUsecase,
		handler:    handler,
	}, nil
}

// RegisterRoutes registers booking routes with the provided router. The
// router must already enforce authentication; requireMentor guards the
// mentor-only reject action.
func (bm *BookingModule) RegisterRoutes(router fiber.Router, requireMentor fiber.Handler) {
	bm.handler.SetupBookingRoutes(router, requireMentor)
}

// GetUsecase returns the booking usecase for external access
func (bm *BookingModule) GetUsecase() usecase.BookingUsecaseInterface {
	return bm.usecase
}

// Stop performs cleanup when the module is shut down
func (bm *BookingModule) Stop() error {
	return nil
}
