// Package bus delivers notifications to the subscribers of a room. The Hub
// serves the sessions of this process; the Relay extends it across
// instances through a RabbitMQ fanout exchange.
package bus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"orderdispatch/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

const (
	meterName = "orderdispatch/internal/adapters/out/bus"

	// DefaultBufferSize is the number of frames a subscriber may lag behind
	// before further frames are dropped for it.
	DefaultBufferSize = 64
)

// Frame is the JSON envelope sent to subscribers.
type Frame struct {
	Room  ports.Room      `json:"room"`
	Event ports.Event     `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Subscriber is one session. Frames arrive on Frames until the subscriber is
// removed from the hub, which closes the channel.
type Subscriber struct {
	frames chan []byte
	rooms  map[ports.Room]struct{}
	closed bool
}

func (s *Subscriber) Frames() <-chan []byte {
	return s.frames
}

type hubMetrics struct {
	delivered metric.Int64Counter
	dropped   metric.Int64Counter
}

func newHubMetrics(m metric.Meter) hubMetrics {
	if m == nil {
		m = metricnoop.NewMeterProvider().Meter(meterName)
	}
	delivered, _ := m.Int64Counter("notifications.delivered",
		metric.WithDescription("Frames handed to subscriber buffers"))
	dropped, _ := m.Int64Counter("notifications.dropped",
		metric.WithDescription("Frames discarded because a subscriber buffer was full"))
	return hubMetrics{delivered: delivered, dropped: dropped}
}

// Hub is the in-process room registry. It implements
// ports.NotificationPublisher.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[ports.Room]map[*Subscriber]struct{}
	bufferSize int
	logger     *slog.Logger
	metrics    hubMetrics
}

type Option func(*Hub)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		h.logger = logger
	}
}

func WithMeter(m metric.Meter) Option {
	return func(h *Hub) {
		h.metrics = newHubMetrics(m)
	}
}

func WithBufferSize(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.bufferSize = n
		}
	}
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		rooms:      make(map[ports.Room]map[*Subscriber]struct{}),
		bufferSize: DefaultBufferSize,
		logger:     slog.Default(),
		metrics:    newHubMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	h.logger = h.logger.With("component", "notification_hub")
	return h
}

// Subscribe registers a session that is not in any room yet.
func (h *Hub) Subscribe() *Subscriber {
	return &Subscriber{
		frames: make(chan []byte, h.bufferSize),
		rooms:  make(map[ports.Room]struct{}),
	}
}

func (h *Hub) Join(s *Subscriber, room ports.Room) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Subscriber]struct{})
		h.rooms[room] = members
	}
	members[s] = struct{}{}
	s.rooms[room] = struct{}{}
}

func (h *Hub) Leave(s *Subscriber, room ports.Room) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leave(s, room)
}

// Unsubscribe removes s from every room and closes its channel. It is safe
// to call more than once.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return
	}
	for room := range s.rooms {
		h.leave(s, room)
	}
	s.closed = true
	close(s.frames)
}

func (h *Hub) leave(s *Subscriber, room ports.Room) {
	delete(s.rooms, room)
	if members, ok := h.rooms[room]; ok {
		delete(members, s)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Members reports how many sessions are in room.
func (h *Hub) Members(room ports.Room) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) Publish(ctx context.Context, room ports.Room, event ports.Event, payload any) {
	frame, err := EncodeFrame(room, event, payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode notification",
			"room", room, "event", event, "error", err)
		return
	}
	h.Broadcast(ctx, room, event, frame)
}

// Broadcast hands an encoded frame to every member of room. A member whose
// buffer is full misses the frame.
func (h *Hub) Broadcast(ctx context.Context, room ports.Room, event ports.Event, frame []byte) {
	attrs := metric.WithAttributes(attribute.String("event", string(event)))

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.rooms[room] {
		select {
		case s.frames <- frame:
			h.metrics.delivered.Add(ctx, 1, attrs)
		default:
			h.metrics.dropped.Add(ctx, 1, attrs)
			h.logger.WarnContext(ctx, "subscriber is too slow, notification dropped",
				"room", room, "event", event)
		}
	}
}

func EncodeFrame(room ports.Room, event ports.Event, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Room: room, Event: event, Data: data})
}
