package ports

import "codetally/internal/domain"

// ProgressPublisher publishes progress messages for a session.
// Publishing to a session nobody is observing is a no-op.
type ProgressPublisher interface {
	Publish(sessionID, message string, severity domain.Severity)
}

// ProgressSink delivers events to one observer
type ProgressSink interface {
	Close()
	KeepAlive() error
	Send(event domain.ProgressEvent) error
}
