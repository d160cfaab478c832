// Package events publishes build completion events to NATS when configured.
// Publishing is best effort: a broken or absent broker degrades the build to a
// warning, never a failure.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

// BuildEvent is the payload published after each build.
type BuildEvent struct {
	BuildID      string    `json:"build_id"`
	Outcome      string    `json:"outcome"`
	Rendered     int       `json:"rendered"`
	Skipped      int       `json:"skipped"`
	Placeholders int       `json:"placeholders"`
	DurationMS   int64     `json:"duration_ms"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Publisher publishes build events to a JetStream subject.
type Publisher struct {
	conn    *nats.Conn
	js      jetstream.JetStream
	subject string
}

// NewPublisher connects to NATS using the events config. It returns an error
// when events are disabled or the broker is unreachable; callers treat both as
// a reason to continue without events.
func NewPublisher(cfg *config.EventsConfig) (*Publisher, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("build events are disabled")
	}

	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name("sitegen"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(3),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	slog.Info("NATS publisher initialized for build events", "url", cfg.NATSURL, "subject", cfg.Subject)

	return &Publisher{conn: conn, js: js, subject: cfg.Subject}, nil
}

// Publish sends one build event through JetStream.
func (p *Publisher) Publish(event BuildEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if event.CompletedAt.IsZero() {
		event.CompletedAt = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal build event: %w", err)
	}
	if _, err := p.js.Publish(ctx, p.subject, data); err != nil {
		return fmt.Errorf("publish build event: %w", err)
	}

	slog.Debug("Published build event", "build_id", event.BuildID, "outcome", event.Outcome)
	return nil
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}
