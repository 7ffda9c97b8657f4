package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/mailer"
	mailerMocks "bistro/infras/mailer/mocks"
	"bistro/infras/otel/mocks"
	"bistro/internal/domains/notification/service"
	"bistro/internal/domains/reservation/model"
)

var now = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func newReservation(t *testing.T) *model.Reservation {
	t.Helper()

	customer, err := model.NewCustomerInfo("João Souza", "joao@example.com", "(11) 98765-4321", "birthday cake")
	require.NoError(t, err)

	rt, err := model.NewReservationTime(time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC), 120, now)
	require.NoError(t, err)

	r, err := model.New("res-42", "T005", customer, rt, 4, now)
	require.NoError(t, err)

	return r
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Bistro"

	return cfg
}

func TestNotification_Publish(t *testing.T) {
	tests := []struct {
		name      string
		event     func(t *testing.T) model.Event
		setupMock func(m *mailerMocks.MockMailer)
		wantErr   bool
	}{
		{
			name: "confirmed sends confirmation email",
			event: func(t *testing.T) model.Event {
				r := newReservation(t)
				require.NoError(t, r.Confirm())

				return r.PullDomainEvents()[0]
			},
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email mailer.Email) error {
					assert.Equal(t, "joao@example.com", email.To)
					assert.Contains(t, email.Subject, "Reservation confirmed")
					assert.Contains(t, email.Text, "01/06/2025 19:00")
					assert.Contains(t, email.Text, "Table: T005")
					assert.Contains(t, email.Text, "birthday cake")
					assert.Contains(t, email.Text, "The Bistro team")
					assert.Equal(t, []string{string(model.EventReservationConfirmed)}, email.Tags)

					return nil
				})
			},
		},
		{
			name: "cancelled sends cancellation email",
			event: func(t *testing.T) model.Event {
				r := newReservation(t)
				require.NoError(t, r.Cancel())

				return r.PullDomainEvents()[0]
			},
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email mailer.Email) error {
					assert.Contains(t, email.Subject, "Reservation cancelled")

					return nil
				})
			},
		},
		{
			name: "completed sends thank you email",
			event: func(t *testing.T) model.Event {
				r := newReservation(t)
				require.NoError(t, r.Confirm())
				require.NoError(t, r.Complete())

				return r.PullDomainEvents()[1]
			},
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email mailer.Email) error {
					assert.Contains(t, email.Subject, "Thank you for your visit")

					return nil
				})
			},
		},
		{
			name: "modified mentions previous booking",
			event: func(t *testing.T) model.Event {
				r := newReservation(t)

				rt, err := model.NewReservationTime(time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC), 90, now)
				require.NoError(t, err)
				require.NoError(t, r.Modify("T006", rt, 5))

				return r.PullDomainEvents()[0]
			},
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email mailer.Email) error {
					assert.Contains(t, email.Subject, "Reservation modified")
					assert.Contains(t, email.Text, "previously at table T005 on 01/06/2025 19:00 for 4 people")
					assert.Contains(t, email.Text, "Table: T006")

					return nil
				})
			},
		},
		{
			name: "mailer failure",
			event: func(t *testing.T) model.Event {
				r := newReservation(t)
				require.NoError(t, r.Cancel())

				return r.PullDomainEvents()[0]
			},
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mailerMocks.NewMockMailer(ctrl)
			tt.setupMock(m)

			svc := service.New(m, newConfig(), mocks.NewOtel())

			err := svc.Publish(context.Background(), tt.event(t))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestNotification_HandleMessage(t *testing.T) {
	r := newReservation(t)
	require.NoError(t, r.Confirm())

	value, err := json.Marshal(model.NewEventEnvelope(r.PullDomainEvents()[0]))
	require.NoError(t, err)

	tests := []struct {
		name      string
		message   kafkaGo.Message
		setupMock func(m *mailerMocks.MockMailer)
	}{
		{
			name:    "decodes and notifies",
			message: kafkaGo.Message{Key: []byte("res-42"), Value: value},
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "malformed payload is dropped",
			message:   kafkaGo.Message{Key: []byte("res-42"), Value: []byte("{not json")},
			setupMock: func(*mailerMocks.MockMailer) {},
		},
		{
			name:      "unknown event type is dropped",
			message:   kafkaGo.Message{Key: []byte("res-42"), Value: []byte(`{"event_type":"ReservationLost","customer_name":"Ana Lima","customer_email":"ana@example.com","customer_phone":"11987654321","start_time":"2025-06-01T19:00:00Z","duration_minutes":120}`)},
			setupMock: func(*mailerMocks.MockMailer) {},
		},
		{
			name:    "mailer failure is logged",
			message: kafkaGo.Message{Key: []byte("res-42"), Value: value},
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mailerMocks.NewMockMailer(ctrl)
			tt.setupMock(m)

			svc := service.New(m, newConfig(), mocks.NewOtel())

			assert.NotPanics(t, func() {
				svc.HandleMessage(context.Background(), tt.message)
			})
		})
	}
}
