// Package events publishes switch lifecycle notifications after the
// corresponding transaction has committed.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/logging"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	TypeSwitchRegistered = "switch.registered"
	TypeSwitchTriggered  = "switch.triggered"
)

// Event is the JSON envelope put on the bus.
type Event struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Owner  string    `json:"owner"`
	Height int64     `json:"height"`
	Time   time.Time `json:"time"`
	Data   any       `json:"data,omitempty"`
}

func New(eventType, owner string, height int64, data any) Event {
	return Event{
		ID:     uuid.New().String(),
		Type:   eventType,
		Owner:  owner,
		Height: height,
		Time:   time.Now().UTC(),
		Data:   data,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

type conn interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher sends events to "<prefix>.<type>" on a core NATS connection.
type NATSPublisher struct {
	nc     conn
	prefix string
	logger logging.Logger
}

func NewNATSPublisher(nc conn, prefix string, l logging.Logger) *NATSPublisher {
	return &NATSPublisher{nc: nc, prefix: prefix, logger: l.With("module", "events")}
}

func (p *NATSPublisher) Subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", e.Type, err)
	}

	subject := p.Subject(e.Type)
	if err := p.nc.Publish(subject, b); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", e.Type, err)
	}

	p.logger.Debug(ctx, "event published", "subject", subject, "id", e.ID, "owner", e.Owner)
	return nil
}

// Connect dials NATS and logs connection state changes.
func Connect(ctx context.Context, url string, l logging.Logger) (*nats.Conn, error) {
	log := l.With("module", "nats")

	nc, err := nats.Connect(url,
		nats.Name("deadswitch"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn(ctx, "NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info(ctx, "NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error(ctx, "NATS error", "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Info(ctx, "Connected to NATS", "url", nc.ConnectedUrl())
	return nc, nil
}
