package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	"resthouse/infras/kafka"
	kafkaMocks "resthouse/infras/kafka/mocks"
	"resthouse/infras/otel/mocks"
	"resthouse/internal/events"
)

func newDispatcher(t *testing.T) (events.Dispatcher, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"
	cfg.Kafka.Topics.BookingCancelled = "booking.cancelled"

	return events.NewKafkaDispatcher(mockClient, cfg, mocks.NewOtel()), mockClient
}

func TestDispatcher_BookingConfirmed(t *testing.T) {
	dispatcher, mockClient := newDispatcher(t)

	event := events.BookingEvent{
		BookingID:   "booking-id",
		RoomID:      "room-id",
		RoomType:    "Deluxe",
		Email:       "guest@example.com",
		TotalAmount: 5400,
		Status:      "confirmed",
	}

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "booking.confirmed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, "booking-id", messages[0].Key)

			return nil
		})

	dispatcher.BookingConfirmed(context.Background(), event)
}

func TestDispatcher_PublishFailureIsSwallowed(t *testing.T) {
	dispatcher, mockClient := newDispatcher(t)

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "booking.cancelled", gomock.Any()).
		Return(errors.New("broker unreachable"))

	// Publishing is best-effort: a broker failure must not panic or surface
	// to the caller.
	dispatcher.BookingCancelled(context.Background(), events.BookingEvent{BookingID: "booking-id"})
}
