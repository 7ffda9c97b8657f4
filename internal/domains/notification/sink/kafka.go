package sink

import (
	"context"
	"fmt"

	"bistro/config"
	"bistro/infras/kafka"
	"bistro/internal/domains/notification/dispatcher"
	"bistro/internal/domains/reservation/model"
)

type kafkaSink struct {
	client kafka.Client
	topic  string
}

// NewKafka publishes events to the reservation events topic, keyed by reservation id so one
// reservation's events stay in order on a partition.
func NewKafka(client kafka.Client, cfg *config.Config) dispatcher.Sink {
	return &kafkaSink{
		client: client,
		topic:  cfg.Kafka.Topics.ReservationEvents,
	}
}

func (k *kafkaSink) Publish(ctx context.Context, event model.Event) error {
	message := kafka.Message{
		Key:   event.Snapshot().ReservationID.String(),
		Value: model.NewEventEnvelope(event),
	}

	if err := k.client.SendMessages(ctx, k.topic, message); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type(), err)
	}

	return nil
}
