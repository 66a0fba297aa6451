package queue

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablebook/reservation-system/internal/api/metrics"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans reservation activity events out to a fixed set of workers,
// sharded by reservation id so events for one reservation are persisted in
// the order they were recorded.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	service ports.ActivityService
	log     zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers run until Stop closes their
// channels or ctx is cancelled, whichever comes first.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Stop closes the worker channels and blocks until every queued event has
// been processed. Called after the HTTP server has drained so events
// recorded by in-flight requests are not lost. Idempotent; Record calls
// after Stop drop their event.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Record implements ports.ActivityRecorder. Non-blocking up to channelBuffer
// capacity; a full shard drops the event rather than stalling the request.
func (d *Dispatcher) Record(event ports.ActivityInput) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := d.shardIndex(event.ReservationID)
	if d.stopped {
		metrics.ActivityErrorsTotal.WithLabelValues("stopped").Inc()
		d.log.Warn().
			Int64("reservation_id", event.ReservationID).
			Msg("dispatcher stopped, event dropped")
		return
	}
	select {
	case d.workers[i] <- event:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.ActivityErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Int64("reservation_id", event.ReservationID).
			Int("worker_id", i).
			Msg("activity queue full, event dropped")
	}
}

// shardIndex maps a reservation id deterministically to a worker index.
func (d *Dispatcher) shardIndex(reservationID int64) int {
	return int(reservationID % int64(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	defer d.wg.Done()

	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			start := time.Now()
			if err := d.service.Process(ctx, event); err != nil {
				metrics.ActivityErrorsTotal.WithLabelValues("process_failed").Inc()
				d.log.Error().Err(err).
					Int64("reservation_id", event.ReservationID).
					Int("worker_id", id).
					Msg("activity processing failed")
				continue
			}
			metrics.ActivityProcessedTotal.WithLabelValues(string(event.Action)).Inc()
			metrics.ActivityProcessingDuration.WithLabelValues(string(event.Action)).Observe(time.Since(start).Seconds())
		}
	}
}
