// Package events publishes order lifecycle events. The storefront emits an
// order.created event on every successful checkout; where it goes depends on
// configuration: the process log by default, or a RabbitMQ queue when a
// broker URL is configured.
package events

import "log"

// Publisher sends a domain event under a routing key.
type Publisher interface {
	Publish(routingKey string, body []byte) error
	Close() error
}

// LogPublisher writes events to the process log. It is the default publisher
// when no broker is configured.
type LogPublisher struct{}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish logs the event.
func (p *LogPublisher) Publish(routingKey string, body []byte) error {
	log.Printf("event %s: %s", routingKey, body)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error {
	return nil
}
