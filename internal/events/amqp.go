package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	// publishTimeout bounds how long a single publish or dial may take.
	publishTimeout = 5 * time.Second

	// redialInterval is the minimum time between two connection attempts.
	redialInterval = 5 * time.Second
)

var errPublisherClosed = errors.New("publisher is closed")

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	Close() error
}

// dialFunc opens a connection to the broker and a channel on it.
type dialFunc func() (channel, io.Closer, error)

// AMQP publishes events as persistent JSON messages to a durable direct
// exchange. The routing key is the event type.
//
// When the broker closes the connection, the next publish dials again.
type AMQP struct {
	exchange   string
	dial       dialFunc
	retryAfter time.Duration

	// An amqp channel must not be used by multiple goroutines at once
	mu       sync.Mutex
	conn     io.Closer
	ch       channel
	closed   chan *amqp.Error
	lastDial time.Time
	shutdown bool
}

// Dial connects to the broker at url and declares the exchange.
func Dial(url, exchange string) (*AMQP, error) {
	return newAMQP(exchange, func() (channel, io.Closer, error) {
		conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(publishTimeout)})
		if err != nil {
			return nil, nil, fmt.Errorf("dial AMQP: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open channel: %w", err)
		}

		return ch, conn, nil
	})
}

func newAMQP(exchange string, dial dialFunc) (*AMQP, error) {
	p := &AMQP{exchange: exchange, dial: dial, retryAfter: redialInterval}
	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

// connect opens a new channel and declares the exchange on it.
func (p *AMQP) connect() error {
	p.disconnect()
	p.lastDial = time.Now()

	ch, conn, err := p.dial()
	if err != nil {
		return err
	}

	err = ch.ExchangeDeclare(
		p.exchange, // name
		"direct",   // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}

	p.ch, p.conn = ch, conn

	// Buffered so that the library never blocks on sending to it
	p.closed = ch.NotifyClose(make(chan *amqp.Error, 1))
	return nil
}

// disconnect closes the current channel and its connection.
func (p *AMQP) disconnect() error {
	var err error

	// The channel may already be closed by the broker
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		err = p.conn.Close()
	}

	p.ch, p.conn, p.closed = nil, nil, nil
	return err
}

// openChannel returns the current channel. If the broker closed it, a new
// one is dialed, at most once per retryAfter.
func (p *AMQP) openChannel() (channel, error) {
	if p.shutdown {
		return nil, errPublisherClosed
	}

	select {
	case reason, ok := <-p.closed:
		if ok {
			log.Warn().Str("reason", reason.Reason).Int("code", reason.Code).Msg("AMQP channel closed by broker")
		}
		p.disconnect()
	default:
	}

	if p.ch != nil {
		return p.ch, nil
	}

	if wait := p.retryAfter - time.Since(p.lastDial); wait > 0 {
		return nil, fmt.Errorf("not connected to AMQP broker, next attempt in %s", wait.Round(time.Millisecond))
	}

	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("reconnect: %w", err)
	}

	log.Info().Str("exchange", p.exchange).Msg("reconnected to AMQP broker")
	return p.ch, nil
}

func (p *AMQP) Publish(ctx context.Context, e Event) error {
	body, err := e.JSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.openChannel()
	if err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}

	err = p.publish(ctx, ch, e, body)

	// The connection can be lost before the close notification arrives
	if errors.Is(err, amqp.ErrClosed) {
		p.disconnect()
		ch, err = p.openChannel()
		if err == nil {
			err = p.publish(ctx, ch, e, body)
		}
	}

	if err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}

	log.Debug().Str("event", string(e.Type)).Str("resource", e.ResourceID.String()).Msg("published event")
	return nil
}

func (p *AMQP) publish(ctx context.Context, ch channel, e Event, body []byte) error {
	return ch.PublishWithContext(
		ctx,
		p.exchange,     // exchange
		string(e.Type), // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    e.Timestamp,
			Body:         body,
		},
	)
}

func (p *AMQP) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.shutdown = true
	return p.disconnect()
}
