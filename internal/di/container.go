package di

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"mentorhub/internal/auth"
	"mentorhub/internal/auth/config"
	"mentorhub/internal/booking"
	"mentorhub/internal/shared/eventbus"
	"mentorhub/internal/shared/logger"

	"go.etcd.io/bbolt"
)

// Container represents a dependency injection container with proper lifecycle management
type Container struct {
	mu        sync.RWMutex
	services  map[reflect.Type]interface{}
	factories map[reflect.Type]func() (interface{}, error)
	// Module instances
	AuthModule    *auth.AuthModule
	BookingModule *booking.BookingModule
	// Durable store handle
	Store *bbolt.DB
	// Event bus shared by all modules
	Events eventbus.EventBusInterface
	// Configuration
	AuthConfig *config.Config
	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container
func NewContainer() *Container {
	return &Container{
		services:  make(map[reflect.Type]interface{}),
		factories: make(map[reflect.Type]func() (interface{}, error)),
	}
}

// InitializeAuth initializes the registration and session module on the given
// durable store.
func (c *Container) InitializeAuth(db *bbolt.DB, authConfig *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Store = db
	c.AuthConfig = authConfig

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}
	if c.Events == nil {
		c.Events = eventbus.NewEventBus(c.Logger)
	}

	authModule, err := auth.NewAuthModule(db, authConfig, c.Events)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeBooking initializes the booking ledger module. The auth module
// must be initialized first because bookings reference its users.
func (c *Container) InitializeBooking() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule == nil {
		return fmt.Errorf("auth module must be initialized before booking module")
	}
	if c.Store == nil {
		return fmt.Errorf("store must be initialized before booking module")
	}

	bookingModule, err := booking.NewBookingModule(c.Store, c.AuthModule.GetUserRepository(), c.Events)
	if err != nil {
		return fmt.Errorf("failed to create booking module: %w", err)
	}

	c.BookingModule = bookingModule
	return nil
}

// Register registers a service instance
func (c *Container) Register(service interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	serviceType := reflect.TypeOf(service)
	if serviceType.Kind() == reflect.Ptr {
		serviceType = serviceType.Elem()
	}

	c.services[serviceType] = service
	return nil
}

// RegisterFactory registers a factory function for a service
func (c *Container) RegisterFactory(serviceType reflect.Type, factory func() (interface{}, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.factories[serviceType] = factory
	return nil
}

// Resolve resolves a service by type
func (c *Container) Resolve(serviceType reflect.Type) (interface{}, error) {
	c.mu.RLock()

	if service, exists := c.services[serviceType]; exists {
		c.mu.RUnlock()
		return service, nil
	}

	if factory, exists := c.factories[serviceType]; exists {
		c.mu.RUnlock()

		service, err := factory()
		if err != nil {
			return nil, fmt.Errorf("failed to create service: %w", err)
		}

		c.mu.Lock()
		c.services[serviceType] = service
		c.mu.Unlock()

		return service, nil
	}

	c.mu.RUnlock()
	return nil, fmt.Errorf("service of type %v not registered", serviceType)
}

// GetService is a generic helper for resolving services
func GetService[T any](c *Container) (T, error) {
	var zero T
	serviceType := reflect.TypeOf(zero)

	service, err := c.Resolve(serviceType)
	if err != nil {
		return zero, err
	}

	if typedService, ok := service.(T); ok {
		return typedService, nil
	}

	return zero, fmt.Errorf("service is not of expected type %T", zero)
}

// GetAuthModule returns the auth module instance
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetBookingModule returns the booking module instance
func (c *Container) GetBookingModule() *booking.BookingModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BookingModule
}

// HealthCheck performs health check on the store and registered modules
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Store != nil {
		// A read-only no-op transaction verifies the store file is usable.
		if err := c.Store.View(func(tx *bbolt.Tx) error { return nil }); err != nil {
			return fmt.Errorf("store health check failed: %w", err)
		}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return nil
}

// Close performs cleanup of modules and the store in reverse initialization
// order.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.BookingModule != nil {
		if err := c.BookingModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("booking module cleanup failed: %w", err))
		}
		c.BookingModule = nil
	}

	if c.AuthModule != nil {
		if err := c.AuthModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("auth module cleanup failed: %w", err))
		}
		c.AuthModule = nil
	}

	c.Events = nil

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close store: %w", err))
		}
		c.Store = nil
	}

	c.services = make(map[reflect.Type]interface{})
	c.factories = make(map[reflect.Type]func() (interface{}, error))

	if len(errs) > 0 {
		return fmt.Errorf("container cleanup encountered %d errors: %v", len(errs), errs)
	}
	return nil
}
