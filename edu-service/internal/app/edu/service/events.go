package service

import (
	"context"
	"encoding/json"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/infrastructure"
	"aussieedu/pkg/logger"
)

// publishEvent отправляет событие в Kafka
// Ошибку только логируем: запись в MongoDB уже состоялась, Kafka не критична
func publishEvent(ctx context.Context, publisher infrastructure.MessagePublisher, event entity.SiteEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Warn().Err(err).Str("event_type", event.EventType).Msg("Failed to marshal site event")
		return
	}

	if err := publisher.PublishMessage(ctx, event.EntityID, data); err != nil {
		logger.Warn().
			Err(err).
			Str("event_type", event.EventType).
			Str("entity_id", event.EntityID).
			Msg("Failed to publish site event")
	}
}
