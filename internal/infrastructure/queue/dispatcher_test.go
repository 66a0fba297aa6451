package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

type collectingService struct {
	mu     sync.Mutex
	events []ports.ActivityInput
	done   chan struct{} // closed once want events have arrived
	want   int
}

func newCollectingService(want int) *collectingService {
	return &collectingService{done: make(chan struct{}), want: want}
}

func (s *collectingService) Process(_ context.Context, event ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *collectingService) wait(t *testing.T) []ports.ActivityInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, got %d of %d", len(s.events), s.want)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.ActivityInput, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := newCollectingService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(ports.ActivityInput{ReservationID: 1, OwnerID: "user_a", Action: domain.ActivityCreated})
	d.Record(ports.ActivityInput{ReservationID: 2, OwnerID: "user_a", Action: domain.ActivityUpdated})
	d.Record(ports.ActivityInput{ReservationID: 3, OwnerID: "user_b", Action: domain.ActivityDeleted})

	events := svc.wait(t)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestDispatcher_SameReservationKeepsOrder(t *testing.T) {
	// Events for one reservation land on one shard, so persistence order
	// matches record order.
	const n = 20
	svc := newCollectingService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		action := domain.ActivityUpdated
		if i == 0 {
			action = domain.ActivityCreated
		}
		d.Record(ports.ActivityInput{
			ReservationID: 7,
			OwnerID:       "user_a",
			Action:        action,
			Timestamp:     time.Unix(int64(i), 0),
		})
	}

	events := svc.wait(t)
	for i, ev := range events {
		if ev.Timestamp.Unix() != int64(i) {
			t.Fatalf("event %d arrived out of order (timestamp %d)", i, ev.Timestamp.Unix())
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	for id := int64(1); id <= 100; id++ {
		first := d.shardIndex(id)
		if second := d.shardIndex(id); second != first {
			t.Fatalf("shard index for id %d changed: %d then %d", id, first, second)
		}
		if first < 0 || first >= 4 {
			t.Fatalf("shard index %d out of range for id %d", first, id)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_StopDrainsQueuedEvents(t *testing.T) {
	// Events recorded by requests still draining at shutdown must be
	// persisted before Stop returns.
	const n = 10
	svc := newCollectingService(n)
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < n; i++ {
		d.Record(ports.ActivityInput{ReservationID: int64(i + 1), Action: domain.ActivityCreated})
	}
	d.Stop()

	svc.mu.Lock()
	got := len(svc.events)
	svc.mu.Unlock()
	if got != n {
		t.Fatalf("expected all %d events processed after Stop, got %d", n, got)
	}
}

func TestDispatcher_RecordAfterStopDropsQuietly(t *testing.T) {
	svc := newCollectingService(1)
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(context.Background())
	d.Stop()

	// Must not panic on the closed channels and must not deliver.
	d.Record(ports.ActivityInput{ReservationID: 1, Action: domain.ActivityCreated})

	svc.mu.Lock()
	got := len(svc.events)
	svc.mu.Unlock()
	if got != 0 {
		t.Fatalf("expected no events after Stop, got %d", got)
	}
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(2, newCollectingService(1), zerolog.Nop())
	d.Start(context.Background())
	d.Stop()
	d.Stop()
}
