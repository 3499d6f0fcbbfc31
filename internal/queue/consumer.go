package queue

import (
    "context"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "time"

    "github.com/goccy/go-json"
    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/hotel-booking-web/internal/config"
)

// StartActivityConsumer connects to RabbitMQ, declares both activity queues
// and appends each message to the activity log. It reconnects with backoff
// and returns only when ctx is cancelled.
func StartActivityConsumer(ctx context.Context, cfg config.QueueConfig) error {
    backoff := time.Second
    for {
        if ctx.Err() != nil {
            return ctx.Err()
        }
        conn, err := amqp.Dial(cfg.URL)
        if err != nil {
            log.Warn().Err(err).Dur("retry_in", backoff).Msg("activity-consumer: dial failed")
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = consumeLoop(ctx, conn, cfg)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        log.Warn().Err(err).Msg("activity-consumer: consume loop ended; reconnecting")
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, cfg config.QueueConfig) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Warn().Err(err).Msg("activity-consumer: set QoS failed")
    }

    created, err := declareAndConsume(ch, cfg.CreatedQueue)
    if err != nil {
        return err
    }
    status, err := declareAndConsume(ch, cfg.StatusQueue)
    if err != nil {
        return err
    }

    for {
        var (
            d     amqp.Delivery
            ok    bool
            queue string
        )
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok = <-created:
            queue = cfg.CreatedQueue
        case d, ok = <-status:
            queue = cfg.StatusQueue
        }
        if !ok {
            return errors.New("deliveries channel closed")
        }
        if err := HandleMessage(cfg, queue, d.Body); err != nil {
            log.Error().Err(err).Str("queue", queue).Msg("activity-consumer: handle message failed")
            _ = d.Nack(false, false)
            continue
        }
        _ = d.Ack(false)
    }
}

func declareAndConsume(ch *amqp.Channel, queue string) (<-chan amqp.Delivery, error) {
    if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
        return nil, fmt.Errorf("queue declare %s: %w", queue, err)
    }
    msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
    if err != nil {
        return nil, fmt.Errorf("queue consume %s: %w", queue, err)
    }
    return msgs, nil
}

// HandleMessage decodes a message from the named queue and appends its
// activity line to cfg.ActivityLogPath.
func HandleMessage(cfg config.QueueConfig, queue string, body []byte) error {
    var line string
    switch queue {
    case cfg.CreatedQueue:
        var ev BookingCreatedEvent
        if err := json.Unmarshal(body, &ev); err != nil {
            return fmt.Errorf("unmarshal: %w", err)
        }
        line = ev.ActivityLine()
    case cfg.StatusQueue:
        var ev BookingStatusChangedEvent
        if err := json.Unmarshal(body, &ev); err != nil {
            return fmt.Errorf("unmarshal: %w", err)
        }
        line = ev.ActivityLine()
    default:
        return fmt.Errorf("unknown queue %q", queue)
    }

    if err := os.MkdirAll(filepath.Dir(cfg.ActivityLogPath), 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(cfg.ActivityLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}
