package events

import (
	"testing"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

func TestNewPublisherRequiresEnabledConfig(t *testing.T) {
	if _, err := NewPublisher(nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := NewPublisher(&config.EventsConfig{Enabled: false}); err == nil {
		t.Error("expected error when events are disabled")
	}
}
