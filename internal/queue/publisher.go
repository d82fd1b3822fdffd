package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const securityQueueName = "security.events"

// Publisher sends SecurityEvents to RabbitMQ. A nil Publisher (or one
// with an empty URL) is valid and publishes nothing, so the rest of the
// application never has to care whether a broker is configured. Errors
// are logged and returned; callers are expected to ignore them rather
// than fail the request that triggered the event.
type Publisher struct{ URL string }

func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{URL: url}
}

// Publish marshals the event and delivers it to the security.events
// queue, declaring the queue on the way (idempotent, durable). One
// connection per publish keeps this dependency-free of the request
// lifecycle; audit volume in a teaching lab is tiny.
func (p *Publisher) Publish(ctx context.Context, event SecurityEvent) error {
	if p == nil || p.URL == "" {
		return nil
	}
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("audit: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("audit: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(securityQueueName, true, false, false, false, nil); err != nil {
		log.Printf("audit: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("audit: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", securityQueueName, false, false, pub); err != nil {
		log.Printf("audit: publish failed: %v", err)
		return err
	}
	return nil
}
