package broker

import (
	"context"
	"fmt"

	"levelup-api/internal/models"
)

// EventPublisher publishes boleta lifecycle events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishBoletaCreated publishes a BoletaCreated event
func (ep *EventPublisher) PublishBoletaCreated(ctx context.Context, event *models.BoletaCreatedEvent) error {
	key := fmt.Sprintf("boleta-%d", event.BoletaID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishBoletaStatusChanged publishes a BoletaStatusChanged event
func (ep *EventPublisher) PublishBoletaStatusChanged(ctx context.Context, event *models.BoletaStatusChangedEvent) error {
	key := fmt.Sprintf("boleta-%d", event.BoletaID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishBoletaDeleted publishes a BoletaDeleted event
func (ep *EventPublisher) PublishBoletaDeleted(ctx context.Context, event *models.BoletaDeletedEvent) error {
	key := fmt.Sprintf("boleta-%d", event.BoletaID)
	return ep.producer.PublishEvent(ctx, key, event)
}
