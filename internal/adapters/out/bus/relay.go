package bus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// DefaultExchange is the fanout exchange shared by every instance.
	DefaultExchange = "order_dispatch.notifications"

	roomHeader  = "room"
	eventHeader = "event"
	outboxSize  = 256
)

type outgoing struct {
	room  ports.Room
	event ports.Event
	frame []byte
}

// Relay publishes every notification to the local hub and to a RabbitMQ
// fanout exchange, and feeds frames published by other instances into the
// local hub. It implements ports.NotificationPublisher.
//
// Frames go to the broker through a bounded outbox drained by Run, so
// Publish never waits on the network. While the broker is unreachable the
// relay is detached: Publish only reaches local subscribers.
type Relay struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	dial     func() (*amqp.Connection, error)
	backOff  func() backoff.BackOff
	detached atomic.Bool

	local    *Hub
	exchange string
	origin   string
	outbox   chan outgoing
	logger   *slog.Logger
}

type RelayOption func(*Relay)

// WithRedial lets Serve replace a lost connection with one from dial.
func WithRedial(dial func() (*amqp.Connection, error)) RelayOption {
	return func(r *Relay) { r.dial = dial }
}

func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	return conn, nil
}

func NewRelay(
	conn *amqp.Connection,
	local *Hub,
	exchange string,
	logger *slog.Logger,
	opts ...RelayOption,
) (*Relay, error) {
	if conn == nil || local == nil {
		return nil, errors.New("relay requires a connection and a hub")
	}
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Relay{
		conn:     conn,
		backOff:  defaultBackOff,
		local:    local,
		exchange: exchange,
		origin:   kernel.NewUUID().String(),
		outbox:   make(chan outgoing, outboxSize),
		logger:   logger.With("component", "notification_relay"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

func (r *Relay) Publish(ctx context.Context, room ports.Room, event ports.Event, payload any) {
	frame, err := EncodeFrame(room, event, payload)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to encode notification", "room", room, "event", event, "error", err)
		return
	}
	r.local.Broadcast(ctx, room, event, frame)
	if r.detached.Load() {
		return
	}

	select {
	case r.outbox <- outgoing{room: room, event: event, frame: frame}:
	default:
		r.logger.WarnContext(ctx, "relay outbox is full, notification not forwarded", "room", room, "event", event)
	}
}

// Serve keeps the relay attached to the broker until ctx is done. When Run
// returns the relay detaches, then redials with exponential backoff. Without
// WithRedial a lost broker leaves the relay detached for good.
func (r *Relay) Serve(ctx context.Context) error {
	for {
		if r.connection() == nil {
			if err := r.redial(ctx); err != nil {
				return nil //nolint:nilerr // only ctx ends the redial loop
			}
		}
		err := r.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		r.detach(ctx, err)
	}
}

// Close closes the current broker connection, if any.
func (r *Relay) Close() error {
	if conn := r.swapConnection(nil); conn != nil {
		return conn.Close()
	}
	return nil
}

func (r *Relay) connection() *amqp.Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn
}

func (r *Relay) swapConnection(conn *amqp.Connection) *amqp.Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.conn
	r.conn = conn
	return old
}

// detach switches Publish to local-only delivery and drops frames queued for
// the lost connection. It logs once per outage.
func (r *Relay) detach(ctx context.Context, cause error) {
	if conn := r.swapConnection(nil); conn != nil {
		_ = conn.Close()
	}
	if r.detached.Swap(true) {
		return
	}
	r.logger.WarnContext(ctx, "notification relay detached, publishing to local subscribers only", "error", cause)
	for {
		select {
		case <-r.outbox:
		default:
			return
		}
	}
}

func (r *Relay) redial(ctx context.Context) error {
	if r.dial == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	var conn *amqp.Connection
	err := backoff.Retry(func() error {
		c, err := r.dial()
		if err != nil {
			r.logger.DebugContext(ctx, "notification relay redial failed", "error", err)
			return err
		}
		conn = c
		return nil
	}, backoff.WithContext(r.backOff(), ctx))
	if err != nil {
		return err
	}
	r.swapConnection(conn)
	r.detached.Store(false)
	r.logger.InfoContext(ctx, "notification relay reattached")
	return nil
}

// Run declares the exchange and a private queue bound to it, then forwards
// the outbox and consumes remote frames until ctx is done or the broker
// closes the connection.
func (r *Relay) Run(ctx context.Context) error {
	conn := r.connection()
	if conn == nil {
		return errors.New("relay has no broker connection")
	}
	pub, err := conn.Channel()
	if err != nil {
		return err
	}
	defer pub.Close()

	sub, err := conn.Channel()
	if err != nil {
		return err
	}
	defer sub.Close()

	if err = pub.ExchangeDeclare(r.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	queue, err := sub.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err = sub.QueueBind(queue.Name, "", r.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	deliveries, err := sub.Consume(queue.Name, "relay-"+r.origin, true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	r.logger.InfoContext(ctx, "notification relay started", "exchange", r.exchange, "queue", queue.Name)
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))

	for {
		select {
		case <-ctx.Done():
			return nil
		case amqpErr := <-closed:
			if amqpErr == nil {
				return nil
			}
			return amqpErr
		case out := <-r.outbox:
			r.forward(ctx, pub, out)
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("relay delivery channel closed")
			}
			r.receive(ctx, d)
		}
	}
}

func (r *Relay) forward(ctx context.Context, ch *amqp.Channel, out outgoing) {
	err := ch.PublishWithContext(ctx, r.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		AppId:       r.origin,
		Timestamp:   time.Now().UTC(),
		Headers: amqp.Table{
			roomHeader:  string(out.room),
			eventHeader: string(out.event),
		},
		Body: out.frame,
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to forward notification", "room", out.room, "event", out.event, "error", err)
	}
}

func (r *Relay) receive(ctx context.Context, d amqp.Delivery) {
	if d.AppId == r.origin {
		return
	}
	room, okRoom := d.Headers[roomHeader].(string)
	event, okEvent := d.Headers[eventHeader].(string)
	if !okRoom || !okEvent {
		r.logger.WarnContext(ctx, "discarding relayed frame without routing headers", "message_id", d.MessageId)
		return
	}
	r.local.Broadcast(ctx, ports.Room(room), ports.Event(event), d.Body)
}
