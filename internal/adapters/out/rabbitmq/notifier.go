// Package rabbitmq publishes lifecycle events to a RabbitMQ topic exchange.
// Consumers (driver apps, shipper notification workers, analytics) bind
// their own queues; the publisher only knows the exchange and routing keys.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/tracking"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange is the topic exchange all parcelflow events are published to.
const Exchange = "parcelflow.events"

// Routing keys per event type.
const (
	routingKeyMissionCreated       = "mission.created"
	routingKeyMissionStatusChanged = "mission.status_changed"
	routingKeyMissionReminder      = "mission.reminder"
	routingKeyParcelStatusChanged  = "parcel.status_changed"
)

// Client wraps an AMQP connection and channel for publishing.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial connects to RabbitMQ and declares the events exchange.
func Dial(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Client{conn: conn, ch: ch}, nil
}

// Close releases the channel and connection.
func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Notifier implements ports.Notifier on top of a RabbitMQ client.
type Notifier struct {
	client *Client
}

// NewNotifier creates a RabbitMQ-backed notifier.
func NewNotifier(client *Client) *Notifier {
	return &Notifier{client: client}
}

// missionEvent is the wire payload for mission lifecycle events. The
// completion code is deliberately absent: it travels to the warehouse or
// recipient out of band, never through the event stream.
type missionEvent struct {
	MissionID    string    `json:"mission_id"`
	Number       string    `json:"number"`
	Kind         string    `json:"kind"`
	DriverID     string    `json:"driver_id"`
	Status       string    `json:"status"`
	StatusReason string    `json:"status_reason,omitempty"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	ParcelCount  int       `json:"parcel_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// parcelEvent is the wire payload for parcel status change events.
type parcelEvent struct {
	ParcelID   string  `json:"parcel_id"`
	Status     string  `json:"status"`
	FromStatus *string `json:"from_status,omitempty"`
	MissionID  *string `json:"mission_id,omitempty"`
	Override   bool    `json:"override"`
	Note       string  `json:"note,omitempty"`
	RecordedAt string  `json:"recorded_at"`
}

// MissionCreated announces a freshly assigned mission.
func (n *Notifier) MissionCreated(ctx context.Context, m *mission.Mission) error {
	return n.publishMission(ctx, routingKeyMissionCreated, m)
}

// MissionStatusChanged announces a mission status transition.
func (n *Notifier) MissionStatusChanged(ctx context.Context, m *mission.Mission) error {
	return n.publishMission(ctx, routingKeyMissionStatusChanged, m)
}

// MissionReminder nudges the driver of an overdue pending mission.
func (n *Notifier) MissionReminder(ctx context.Context, m *mission.Mission) error {
	return n.publishMission(ctx, routingKeyMissionReminder, m)
}

// ParcelStatusChanged announces a parcel status change with its ledger
// entry.
func (n *Notifier) ParcelStatusChanged(ctx context.Context, entry *tracking.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	event := parcelEvent{
		ParcelID:   entry.Parcel().String(),
		Status:     entry.Status().String(),
		Override:   entry.IsOverride(),
		Note:       entry.Note(),
		RecordedAt: entry.RecordedAt().UTC().Format(time.RFC3339),
	}
	if from := entry.FromStatus(); from != nil {
		s := from.String()
		event.FromStatus = &s
	}
	if missionID := entry.Mission(); missionID != nil {
		s := missionID.String()
		event.MissionID = &s
	}

	return n.publish(ctx, routingKeyParcelStatusChanged, event)
}

func (n *Notifier) publishMission(ctx context.Context, key string, m *mission.Mission) error {
	if err := m.Validate(); err != nil {
		return err
	}

	return n.publish(ctx, key, missionEvent{
		MissionID:    m.ID().String(),
		Number:       m.Number(),
		Kind:         m.Kind().String(),
		DriverID:     m.Driver().String(),
		Status:       m.Status().String(),
		StatusReason: m.StatusReason(),
		ScheduledAt:  m.ScheduledAt(),
		ParcelCount:  len(m.ParcelIDs()),
		OccurredAt:   time.Now().UTC(),
	})
}

func (n *Notifier) publish(ctx context.Context, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", key, err)
	}

	err = n.client.ch.PublishWithContext(ctx, Exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", key, err)
	}

	return nil
}
