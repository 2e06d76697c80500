package consumer

import (
	"context"
	"encoding/json"

	"go-dispo/internal/bootstrap"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAssignmentLifecycle feeds assignment lifecycle events into the
// audit trail. The scheduling core only writes the outbox; this consumer is
// the read side that chiefs use to reconstruct who moved which shift when.
func ConsumeAssignmentLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.assignment_lifecycle")
	log.Info("assignment lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("assignment lifecycle consumer stopped")
				return
			}
			log.Error("fetch assignment lifecycle message failed", zap.Error(err))
			continue
		}

		var payload map[string]any
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("decode assignment lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		eventType, _ := payload["event_type"].(string)

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  eventType,
			Message: "assignment lifecycle event",
			Meta:    payload,
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit assignment lifecycle message failed", zap.Error(err))
			continue
		}
	}
}
