package domain

import (
	"encoding/json"
	"time"
)

// Severity classifies a progress event
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// ProgressEvent is one human readable progress message for a session
type ProgressEvent struct {
	Message   string
	SessionID string
	Severity  Severity
	Timestamp time.Time
}

// NewProgressEvent stamps an event with the current UTC time
func NewProgressEvent(sessionID, message string, severity Severity) ProgressEvent {
	return ProgressEvent{
		Message:   message,
		SessionID: sessionID,
		Severity:  severity,
		Timestamp: time.Now().UTC(),
	}
}

type progressEventJSON struct {
	Type      Severity `json:"type"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
}

// MarshalJSON renders the event as {type, message, timestamp}
func (e ProgressEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(progressEventJSON{
		Type:      e.Severity,
		Message:   e.Message,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
	})
}
