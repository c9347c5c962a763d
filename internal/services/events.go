package services

import (
	"time"

	"katalog/pkg/rabbitmq"

	"go.uber.org/zap"
)

// EventPublisher sends catalog events to a broker. *rabbitmq.Client implements it.
type EventPublisher interface {
	Publish(event rabbitmq.Event) error
}

// publish is best effort: the write it reports has already been committed.
func publish(pub EventPublisher, log *zap.Logger, eventType, ownerID, resourceID string, data any) {
	if pub == nil {
		return
	}
	event := rabbitmq.Event{
		Type:       eventType,
		OwnerID:    ownerID,
		ResourceID: resourceID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
	if err := pub.Publish(event); err != nil {
		log.Warn("failed to publish catalog event",
			zap.String("type", eventType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
	}
}
