package sink_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/kafka"
	kafkaMocks "bistro/infras/kafka/mocks"
	"bistro/internal/domains/notification/sink"
	"bistro/internal/domains/reservation/model"
)

func cancelledEvent(t *testing.T) model.Event {
	t.Helper()

	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	customer, err := model.NewCustomerInfo("Maria Silva", "maria@example.com", "11987654321", "window seat")
	require.NoError(t, err)

	rt, err := model.NewReservationTime(time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC), 120, now)
	require.NoError(t, err)

	r, err := model.New("res-1", "T003", customer, rt, 4, now)
	require.NoError(t, err)
	require.NoError(t, r.Cancel())

	events := r.PullDomainEvents()
	require.Len(t, events, 1)

	return events[0]
}

func TestKafkaSink_Publish(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Topics.ReservationEvents = "reservation.events"

	tests := []struct {
		name      string
		setupMock func(client *kafkaMocks.MockClient)
		wantErr   bool
	}{
		{
			name: "publishes envelope keyed by reservation",
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), "reservation.events", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						require.Len(t, messages, 1)
						assert.Equal(t, "res-1", messages[0].Key)

						envelope, ok := messages[0].Value.(model.EventEnvelope)
						require.True(t, ok)
						assert.Equal(t, model.EventReservationCancelled, envelope.EventType)
						assert.Equal(t, "T003", envelope.TableID)
						assert.Equal(t, "window seat", envelope.SpecialRequests)

						return nil
					})
			},
		},
		{
			name: "broker failure",
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), "reservation.events", gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			err := sink.NewKafka(client, cfg).Publish(context.Background(), cancelledEvent(t))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
