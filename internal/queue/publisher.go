package queue

import (
    "context"
    "time"

    "github.com/goccy/go-json"
    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/hotel-booking-web/internal/config"
)

// Publisher sends booking activity events. Failures are returned so callers
// can log them, but a publish error never undoes a completed backend call.
type Publisher interface {
    PublishBookingCreated(ctx context.Context, ev BookingCreatedEvent) error
    PublishStatusChanged(ctx context.Context, ev BookingStatusChangedEvent) error
}

// dialTimeout bounds how long a request waits for the broker.
const dialTimeout = 2 * time.Second

// NopPublisher discards every event. Used when the queue is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, BookingCreatedEvent) error { return nil }
func (NopPublisher) PublishStatusChanged(context.Context, BookingStatusChangedEvent) error {
    return nil
}

// AMQPPublisher publishes persistent JSON messages to durable queues on the
// default exchange. A connection is opened per publish; event volume is one
// message per booking action.
type AMQPPublisher struct {
    url          string
    createdQueue string
    statusQueue  string
}

// NewPublisher returns an AMQP publisher when the queue is enabled and a
// NopPublisher otherwise.
func NewPublisher(cfg config.QueueConfig) Publisher {
    if !cfg.Enabled {
        return NopPublisher{}
    }
    return &AMQPPublisher{url: cfg.URL, createdQueue: cfg.CreatedQueue, statusQueue: cfg.StatusQueue}
}

func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, ev BookingCreatedEvent) error {
    return p.publish(ctx, p.createdQueue, ev)
}

func (p *AMQPPublisher) PublishStatusChanged(ctx context.Context, ev BookingStatusChangedEvent) error {
    return p.publish(ctx, p.statusQueue, ev)
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, event any) error {
    conn, err := amqp.DialConfig(p.url, amqp.Config{Heartbeat: 10 * time.Second, Locale: "en_US", Dial: amqp.DefaultDial(dialTimeout)})
    if err != nil {
        log.Warn().Err(err).Str("queue", queue).Msg("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
        log.Warn().Err(err).Str("queue", queue).Msg("rabbitmq: queue declare failed")
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
        log.Warn().Err(err).Str("queue", queue).Msg("rabbitmq: publish failed")
        return err
    }
    return nil
}
