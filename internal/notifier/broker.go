package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const publishTimeout = 5 * time.Second

// Publisher is the part of *amqp.Channel used by Broker.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Message is the JSON body of a published notification.
type Message struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Broker publishes notifications to an AMQP exchange, routed by level.
type Broker struct {
	pub      Publisher
	exchange string
	now      func() time.Time
}

// NewBroker returns a Broker publishing to exchange.
func NewBroker(pub Publisher, exchange string) *Broker {
	return &Broker{
		pub:      pub,
		exchange: exchange,
		now:      time.Now,
	}
}

// Success publishes a success notification.
func (b *Broker) Success(ctx context.Context, message string) {
	b.publish(ctx, LevelSuccess, message)
}

// Error publishes an error notification.
func (b *Broker) Error(ctx context.Context, message string) {
	b.publish(ctx, LevelError, message)
}

func (b *Broker) publish(ctx context.Context, level, message string) {
	l := zerolog.Ctx(ctx)

	body, err := json.Marshal(Message{Level: level, Message: message, Time: b.now()})
	if err != nil {
		l.Error().Err(err).Send()
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = b.pub.PublishWithContext(ctx,
		b.exchange, // exchange
		level,      // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   b.now(),
			Body:        body,
		},
	)
	if err != nil {
		l.Warn().Err(err).Str("exchange", b.exchange).Msg("cannot publish notification")
	}
}

// Connection owns the AMQP connection and channel behind a Broker.
type Connection struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Dial connects to url and declares a durable topic exchange.
func Dial(url, exchange string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Connection{conn: conn, channel: channel}, nil
}

// Channel returns the publishing channel.
func (c *Connection) Channel() *amqp.Channel {
	return c.channel
}

// Close closes the channel and the connection.
func (c *Connection) Close() error {
	if err := c.channel.Close(); err != nil {
		c.conn.Close()
		return err
	}

	return c.conn.Close()
}
