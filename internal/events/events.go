package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"resthouse/config"
	"resthouse/infras/kafka"
	"resthouse/infras/otel"
	"resthouse/shared/constant"
)

// BookingEvent is the payload published for booking lifecycle changes. It is
// consumed downstream by the notification service that emails the guest.
type BookingEvent struct {
	BookingID   string  `json:"booking_id"`
	RoomID      string  `json:"room_id"`
	RoomType    string  `json:"room_type"`
	CustomerID  string  `json:"customer_id"`
	Email       string  `json:"email"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Guests      int     `json:"guests"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}

// Dispatcher publishes booking lifecycle events. Implementations are
// best-effort: callers never fail a request because a publish failed.
type Dispatcher interface {
	BookingConfirmed(ctx context.Context, event BookingEvent)
	BookingCancelled(ctx context.Context, event BookingEvent)
}

type kafkaDispatcher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewKafkaDispatcher(client kafka.Client, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &kafkaDispatcher{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (d *kafkaDispatcher) BookingConfirmed(ctx context.Context, event BookingEvent) {
	d.publish(ctx, d.cfg.Kafka.Topics.BookingConfirmed, event)
}

func (d *kafkaDispatcher) BookingCancelled(ctx context.Context, event BookingEvent) {
	d.publish(ctx, d.cfg.Kafka.Topics.BookingCancelled, event)
}

func (d *kafkaDispatcher) publish(ctx context.Context, topic string, event BookingEvent) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.topic":      topic,
		"event.booking_id": event.BookingID,
	})

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := d.client.SendMessages(ctx, topic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", topic).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
	}
}
