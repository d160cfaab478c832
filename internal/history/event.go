// Package history records build runs in a local SQLite database so past
// builds can be inspected after the fact.
package history

import "time"

// Event types stored for each build.
const (
	EventBuildCompleted = "BuildCompleted"
	EventBuildFailed    = "BuildFailed"
)

// BuildEvent is one recorded build run.
type BuildEvent struct {
	ID        int64     `json:"id"`
	BuildID   string    `json:"build_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   Payload   `json:"payload"`
}

// Payload carries the build summary serialized with each event.
type Payload struct {
	Outcome      string `json:"outcome"`
	Rendered     int    `json:"rendered"`
	Skipped      int    `json:"skipped"`
	Placeholders int    `json:"placeholders"`
	DurationMS   int64  `json:"duration_ms"`
	OutputDir    string `json:"output_dir"`
	Error        string `json:"error,omitempty"`
}
