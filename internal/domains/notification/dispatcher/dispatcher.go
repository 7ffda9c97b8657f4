package dispatcher

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=../mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"bistro/config"
	"bistro/infras/otel"
	"bistro/internal/domains/reservation/model"
	"bistro/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
)

// Sink delivers one event, e.g. to a broker or straight to the customer.
type Sink interface {
	Publish(ctx context.Context, event model.Event) error
}

// Dispatcher hands events to a Sink off the request path. Dispatch never blocks the caller and
// never reports sink failures; they are logged.
type Dispatcher interface {
	Dispatch(ctx context.Context, events ...model.Event)
	// Close stops accepting work and waits for queued events until ctx is done.
	Close(ctx context.Context) error
}

type job struct {
	ctx   context.Context
	event model.Event
}

type dispatcherImpl struct {
	sink  Sink
	otel  otel.Otel
	queue chan job

	mu       sync.RWMutex
	closed   bool
	workers  sync.WaitGroup
	detached sync.WaitGroup
}

func New(sink Sink, cfg *config.Config, otel otel.Otel) Dispatcher {
	workers := cfg.Notification.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	queueSize := cfg.Notification.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	d := &dispatcherImpl{
		sink:  sink,
		otel:  otel,
		queue: make(chan job, queueSize),
	}

	for i := range workers {
		d.workers.Add(1)

		go d.startWorker(i + 1)
	}

	log.Info().Int("workers", workers).Int("queue", queueSize).Msg("event dispatcher started")

	return d
}

func (d *dispatcherImpl) startWorker(workerID int) {
	defer d.workers.Done()

	for j := range d.queue {
		d.publish(j)
	}

	log.Debug().Int("worker", workerID).Msg("event dispatcher worker stopped")
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, events ...model.Event) {
	ctx = context.WithoutCancel(ctx)

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, event := range events {
		j := job{ctx: ctx, event: event}

		if d.closed {
			log.Warn().Str("event", string(event.Type())).Msg("dispatcher closed, publishing event inline")
			d.publish(j)

			continue
		}

		select {
		case d.queue <- j:
		default:
			// Queue full: keep the event on a goroutine of its own.
			d.detached.Add(1)

			go func() {
				defer d.detached.Done()

				d.publish(j)
			}()
		}
	}
}

func (d *dispatcherImpl) publish(j job) {
	ctx, scope := d.otel.NewScope(j.ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.id":       j.event.ID(),
		"event.type":     string(j.event.Type()),
		"reservation.id": j.event.Snapshot().ReservationID.String(),
	})

	defer func() {
		if p := recover(); p != nil {
			scope.TraceError(fmt.Errorf("sink panicked: %v", p))
			log.Error().Interface("panic", p).Str("event", j.event.ID()).Msg("event sink panicked")
		}
	}()

	if err := d.sink.Publish(ctx, j.event); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).
			Str("event", j.event.ID()).
			Str("type", string(j.event.Type())).
			Str("reservation", j.event.Snapshot().ReservationID.String()).
			Msg("failed to publish event")
	}
}

func (d *dispatcherImpl) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})

	go func() {
		d.workers.Wait()
		d.detached.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event dispatcher did not drain: %w", ctx.Err())
	}
}
