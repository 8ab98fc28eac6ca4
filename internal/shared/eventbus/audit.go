package eventbus

import (
	"context"

	"mentorhub/internal/shared/logger"
)

// DomainEventTypes lists every event type the registry publishes.
var DomainEventTypes = []string{
	EventTypeUserRegistered,
	EventTypeUserLoggedIn,
	EventTypeUserLoggedOut,
	EventTypeBookingCreated,
	EventTypeBookingStatusChanged,
}

// RegisterAuditSubscriber attaches a handler that writes every domain event to
// the audit log. Without at least one subscriber the bus drops everything the
// usecases publish.
func RegisterAuditSubscriber(bus EventBusInterface, log logger.Logger) {
	if log == nil {
		log = &noopLogger{}
	}
	audit := log.WithComponent("audit")

	handler := func(ctx context.Context, event Event) error {
		audit.WithFields(map[string]interface{}{
			"event":  event.Type(),
			"source": event.Source(),
			"data":   event.Data(),
		}).Info("domain event")
		return nil
	}

	for _, eventType := range DomainEventTypes {
		bus.Subscribe(eventType, handler)
	}
}
