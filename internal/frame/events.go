package frame

import (
	"log/slog"
	"time"
)

// EventType represents the lifecycle phases of a merge invocation
type EventType string

const (
	EventMergeStart  EventType = "merge_start"
	EventMergeEnd    EventType = "merge_end"
	EventMergeFailed EventType = "merge_failed"
)

// Event represents one lifecycle event of a merge invocation
type Event struct {
	Type      EventType
	MergeID   string // unique ID for tracing one merge call
	Timestamp time.Time
	Data      interface{} // phase-specific data (table count, duration, error)
}

// Observer receives merge lifecycle events
type Observer interface {
	OnEvent(event Event)
}

// LoggingObserver logs all merge events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates an observer backed by the default slog logger
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{
		logger: slog.Default(),
	}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Info("merge_lifecycle",
		"event", event.Type,
		"merge_id", event.MergeID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
