package events

import "errors"

var (
	// ErrBrokerUnavailable возвращается при ошибках соединения с RabbitMQ
	ErrBrokerUnavailable = errors.New("events: broker unavailable")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("events: failed to publish event")
)
