// Package events публикует доменные события в RabbitMQ.
// Единственное исходящее событие - завершение сессии; его слушают
// биллинг и система уведомлений.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/playgrid/PGC-StationService/internal/tracker"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Publisher публикует события завершения сессий в durable очередь.
// Нулевой Publisher допустим: публикация молча пропускается, трекер
// продолжает помечать брони завершенными.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logs    Logger
}

// New подключается к брокеру и объявляет очередь.
// Объявление идемпотентно: durable очередь переживает рестарт брокера.
func New(url, queue string, logs Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrBrokerUnavailable, url, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrBrokerUnavailable, err)
	}

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%w: declare queue %s: %v", ErrBrokerUnavailable, queue, err)
	}

	return &Publisher{conn: conn, channel: ch, queue: queue, logs: logs}, nil
}

// PublishSessionEnded публикует событие завершения сессии.
// Сообщение помечается persistent, чтобы пережить рестарт брокера.
func (p *Publisher) PublishSessionEnded(ctx context.Context, event tracker.SessionEnded) error {
	if p == nil || p.channel == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		return fmt.Errorf("%w: publish to %s: %v", ErrPublish, p.queue, err)
	}

	p.logs.Info("events: published session ended: entity=%s station=%s", event.EntityID, event.StationLabel)

	return nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
