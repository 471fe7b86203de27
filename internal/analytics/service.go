package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
)

// Subscriber receives every emitted event on its own goroutine.
type Subscriber func(Event)

// TrackOption sets optional event fields.
type TrackOption func(*Event)

// WithClientID attaches the anonymous visitor id.
func WithClientID(id string) TrackOption {
	return func(e *Event) { e.ClientID = id }
}

// WithPage attaches the page path the event came from.
func WithPage(page string) TrackOption {
	return func(e *Event) { e.Page = page }
}

// Service is the in-process event bus.
type Service struct {
	log *slog.Logger
	now func() time.Time

	mu          sync.RWMutex
	subscribers map[uint64]Subscriber
	nextID      uint64

	inflight sync.WaitGroup
}

// NewService creates an empty bus
func NewService(log *slog.Logger) *Service {
	return &Service{
		log:         log.With(logger.Scope("analytics")),
		now:         time.Now,
		subscribers: make(map[uint64]Subscriber),
	}
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (s *Service) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// SubscriberCount returns the number of attached subscribers
func (s *Service) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

// Emit delivers e to every subscriber asynchronously and returns at once.
func (s *Service) Emit(e Event) {
	s.mu.RLock()
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		s.inflight.Add(1)
		go s.deliver(fn, e)
	}
}

func (s *Service) deliver(fn Subscriber, e Event) {
	defer s.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("analytics subscriber panicked",
				slog.String("event", e.Name),
				slog.Any("panic", r),
			)
		}
	}()
	fn(e)
}

// Track validates and emits an event. Validation errors are returned to the
// caller; delivery problems never are.
func (s *Service) Track(ctx context.Context, name string, params Params, opts ...TrackOption) (Event, error) {
	e, err := NewEvent(name, params, s.now())
	if err != nil {
		return Event{}, err
	}
	for _, opt := range opts {
		opt(&e)
	}
	s.Emit(e)
	return e, nil
}

// Drain waits for in-flight deliveries or until ctx is done.
func (s *Service) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
