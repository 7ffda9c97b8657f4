package dispatcher_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/otel/mocks"
	"bistro/internal/domains/notification/dispatcher"
	notificationMocks "bistro/internal/domains/notification/mocks"
	"bistro/internal/domains/reservation/model"
)

func confirmedEvents(t *testing.T, n int) []model.Event {
	t.Helper()

	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	customer, err := model.NewCustomerInfo("John Doe", "john@example.com", "11987654321", "")
	require.NoError(t, err)

	rt, err := model.NewReservationTime(time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC), 120, now)
	require.NoError(t, err)

	events := make([]model.Event, 0, n)

	for range n {
		r, err := model.New(model.GenerateReservationID(), "T001", customer, rt, 2, now)
		require.NoError(t, err)
		require.NoError(t, r.Confirm())

		events = append(events, r.PullDomainEvents()...)
	}

	return events
}

func newConfig(workers, queue int) *config.Config {
	cfg := &config.Config{}
	cfg.Notification.Workers = workers
	cfg.Notification.QueueSize = queue

	return cfg
}

func TestDispatcher_DeliversEveryEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := notificationMocks.NewMockSink(ctrl)

	var published atomic.Int32

	sink.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Event) error {
			published.Add(1)

			return nil
		}).
		Times(10)

	d := dispatcher.New(sink, newConfig(3, 16), mocks.NewOtel())

	d.Dispatch(context.Background(), confirmedEvents(t, 10)...)

	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, int32(10), published.Load())
}

func TestDispatcher_SinkFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := notificationMocks.NewMockSink(ctrl)

	sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(2)
	sink.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Event) error { panic("boom") })

	d := dispatcher.New(sink, newConfig(1, 8), mocks.NewOtel())

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), confirmedEvents(t, 3)...)
	})

	assert.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_OverflowFallsBackToGoroutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := notificationMocks.NewMockSink(ctrl)

	release := make(chan struct{})

	var published atomic.Int32

	sink.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Event) error {
			<-release
			published.Add(1)

			return nil
		}).
		Times(6)

	d := dispatcher.New(sink, newConfig(1, 1), mocks.NewOtel())

	events := confirmedEvents(t, 6)
	done := make(chan struct{})

	go func() {
		d.Dispatch(context.Background(), events...)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	close(release)

	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, int32(6), published.Load())
}

func TestDispatcher_CloseHonoursDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := notificationMocks.NewMockSink(ctrl)

	release := make(chan struct{})
	defer close(release)

	sink.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Event) error {
			<-release

			return nil
		})

	d := dispatcher.New(sink, newConfig(1, 1), mocks.NewOtel())
	d.Dispatch(context.Background(), confirmedEvents(t, 1)...)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)
}

func TestDispatcher_DispatchAfterClosePublishesInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := notificationMocks.NewMockSink(ctrl)

	sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	d := dispatcher.New(sink, newConfig(1, 1), mocks.NewOtel())
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))

	d.Dispatch(context.Background(), confirmedEvents(t, 1)...)
}

func TestDispatcher_DetachesFromRequestContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := notificationMocks.NewMockSink(ctrl)

	sink.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ model.Event) error {
			assert.NoError(t, ctx.Err())

			return nil
		})

	d := dispatcher.New(sink, newConfig(1, 4), mocks.NewOtel())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d.Dispatch(ctx, confirmedEvents(t, 1)...)
	require.NoError(t, d.Close(context.Background()))
}
