package services

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"codetally/internal/domain"
	portsmocks "codetally/internal/ports/mocks"
)

type publishedEvent struct {
	message   string
	sessionID string
	severity  domain.Severity
}

// recordPublisher returns a publisher mock that accepts any call and records it
func recordPublisher(t *testing.T) (*portsmocks.MockProgressPublisher, *[]publishedEvent) {
	t.Helper()
	events := &[]publishedEvent{}
	publisher := portsmocks.NewMockProgressPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
		Run(func(sessionID string, message string, severity domain.Severity) {
			*events = append(*events, publishedEvent{message: message, sessionID: sessionID, severity: severity})
		}).
		Maybe()
	return publisher, events
}

func messagesWithSeverity(events []publishedEvent, severity domain.Severity) []string {
	var result []string
	for _, e := range events {
		if e.severity == severity {
			result = append(result, e.message)
		}
	}
	return result
}
