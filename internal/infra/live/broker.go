// Package live fans topic events out to in-process subscribers such as websocket sessions.
package live

import (
	"context"
	"log/slog"
	"sync"

	"bookclub/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Broker implements service.ChangeNotifier. Each subscriber owns a goroutine and an
// unbounded queue, so a slow subscriber delays only itself and sees events in order.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]*subscriber
	logger *slog.Logger
}

// BrokerParams holds dependencies for the broker, injected by Fx.
type BrokerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// New builds a broker that drops every subscriber on shutdown.
func New(params BrokerParams) *Broker {
	broker := NewBroker(params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			broker.Close()

			return nil
		},
	})

	return broker
}

// NewBroker returns an empty broker.
func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		subs:   map[string]*subscriber{},
		logger: logger,
	}
}

// Notify queues event for every current subscriber and returns without waiting for delivery.
func (b *Broker) Notify(ctx context.Context, event service.TopicEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		sub.enqueue(event)
	}
}

// Subscribe registers callback. The returned function may be called any number of times.
func (b *Broker) Subscribe(callback func(service.TopicEvent)) func() {
	sub := newSubscriber(callback, b.logger)
	id := uuid.NewString()

	b.mu.Lock()
	b.subs[id] = sub
	b.mu.Unlock()

	go sub.run()

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			sub.stop()
		})
	}
}

// Len reports the number of active subscribers.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Close stops every subscriber.
func (b *Broker) Close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = map[string]*subscriber{}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
}

type subscriber struct {
	callback func(service.TopicEvent)
	logger   *slog.Logger

	mu     sync.Mutex
	queue  []service.TopicEvent
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

func newSubscriber(callback func(service.TopicEvent), logger *slog.Logger) *subscriber {
	return &subscriber{
		callback: callback,
		logger:   logger,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (s *subscriber) enqueue(event service.TopicEvent) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.queue = append(s.queue, event)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.queue = nil
	close(s.done)
}

func (s *subscriber) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		for {
			s.mu.Lock()
			if s.closed || len(s.queue) == 0 {
				s.mu.Unlock()

				break
			}
			event := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()

			s.deliver(event)
		}
	}
}

func (s *subscriber) deliver(event service.TopicEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Live subscriber panicked",
				slog.Any("panic", r),
				slog.String("event_type", string(event.Type)),
			)
		}
	}()

	s.callback(event)
}
