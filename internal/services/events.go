package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"

	"github.com/egormalkin/adboard/internal/logger"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Event is the audit record published after a successful mutating operation.
type Event struct {
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"` // listing_created, user_registered, ...
	EntityID  int64  `json:"entity_id"`
	Timestamp int64  `json:"timestamp"`
}

// publishEvent publishes an audit event to Kafka. Publishing is
// fire-and-forget: failures are logged and never fail the request.
func publishEvent(ctx context.Context, w KafkaWriter, kind string, entityID int64) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "kind", kind, "entity_id", entityID)
		return
	}

	event := Event{
		EventID:   uuid.NewString(),
		Kind:      kind,
		EntityID:  entityID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "kind", kind, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "kind", kind, "entity_id", entityID, "error", err)
	} else {
		logger.Log.Infow("event published to Kafka", "kind", kind, "entity_id", entityID)
	}
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
