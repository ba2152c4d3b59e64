package event

import (
	"github.com/mdm/backend/internal/domain/identity"
	"github.com/mdm/backend/internal/domain/jobs"
	"github.com/mdm/backend/internal/domain/mdm"
)

// RegisterAllEvents registers all domain event types with the serializer.
// This is required for the OutboxProcessor to deserialize events from the
// outbox table.
func RegisterAllEvents(serializer *EventSerializer) {
	// Product events
	serializer.Register(mdm.EventTypeProductCreated, &mdm.ProductCreatedEvent{})
	serializer.Register(mdm.EventTypeProductUpdated, &mdm.ProductUpdatedEvent{})
	serializer.Register(mdm.EventTypeProductStatusChanged, &mdm.ProductStatusChangedEvent{})
	serializer.Register(mdm.EventTypeProductLaunched, &mdm.ProductLaunchedEvent{})
	serializer.Register(mdm.EventTypeProductDeleted, &mdm.ProductDeletedEvent{})

	// Catalog events
	serializer.Register(mdm.EventTypeCatalogCreated, &mdm.CatalogCreatedEvent{})
	serializer.Register(mdm.EventTypeCatalogUpdated, &mdm.CatalogUpdatedEvent{})
	serializer.Register(mdm.EventTypeCatalogDeleted, &mdm.CatalogDeletedEvent{})

	// Catalog entry events
	serializer.Register(mdm.EventTypeCatalogProductAdded, &mdm.CatalogProductAddedEvent{})
	serializer.Register(mdm.EventTypeCatalogProductPricingChanged, &mdm.CatalogProductPricingChangedEvent{})
	serializer.Register(mdm.EventTypeCatalogProductRemoved, &mdm.CatalogProductRemovedEvent{})

	// Job events, written by the external runner
	serializer.Register(jobs.EventTypeJobCompleted, &jobs.JobCompletedEvent{})

	// Identity events
	serializer.Register(identity.EventTypeUserCreated, &identity.UserCreatedEvent{})
	serializer.Register(identity.EventTypeUserDeleted, &identity.UserDeletedEvent{})
}
