package progress

import (
	"context"
	"errors"
	"sync"
	"time"

	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/ports"
)

// ConnectedMessage is the first event every newly opened sink receives
const ConnectedMessage = "Connected to progress stream"

// ErrEmptySessionID is returned when opening a stream without a session id
var ErrEmptySessionID = errors.New("session id is required")

// SessionState is the lifecycle position of a progress session
type SessionState string

const (
	StateClosed  SessionState = "closed"
	StateOpen    SessionState = "open"
	StatePending SessionState = "pending"
)

type session struct {
	closedAt time.Time
	mu       sync.Mutex
	sink     ports.ProgressSink
}

// Registry routes progress events to at most one sink per session id
type Registry struct {
	interval time.Duration
	mu       sync.RWMutex
	sessions map[string]*session
}

// Verify interface compliance at compile time
var _ ports.ProgressPublisher = (*Registry)(nil)

// NewRegistry creates a registry whose Run loop sends keep-alives every interval
func NewRegistry(interval time.Duration) *Registry {
	return &Registry{
		interval: interval,
		sessions: make(map[string]*session),
	}
}

// Open attaches sink to sessionID, replacing and closing any sink already attached.
// The sink immediately receives a success event confirming the connection.
func (r *Registry) Open(sessionID string, sink ports.ProgressSink) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	r.mu.Lock()
	s, ok := r.sessions[sessionID]
	if !ok {
		s = &session{}
		r.sessions[sessionID] = s
	}
	// Taking s.mu before releasing r.mu keeps the keep-alive loop from pruning s meanwhile
	s.mu.Lock()
	r.mu.Unlock()
	defer s.mu.Unlock()

	if s.sink != nil && s.sink != sink {
		logging.Logger.Info("Replacing progress sink", "session_id", sessionID)
		s.sink.Close()
	}
	s.sink = sink
	s.closedAt = time.Time{}

	logging.Logger.Info("Progress stream opened", "session_id", sessionID)
	s.deliver(domain.NewProgressEvent(sessionID, ConnectedMessage, domain.SeveritySuccess))
	return nil
}

// Publish delivers an event to the session's sink. It never fails: unknown, pending
// and closed sessions drop the event, and a sink that fails to receive is detached.
func (r *Registry) Publish(sessionID, message string, severity domain.Severity) {
	event := domain.NewProgressEvent(sessionID, message, severity)
	logEvent(event)

	if sessionID == "" {
		return
	}
	s := r.lookup(sessionID)
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliver(event)
}

// Close transitions the session to closed and discards its sink
func (r *Registry) Close(sessionID string) {
	s := r.lookup(sessionID)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detach()
	logging.Logger.Info("Progress stream closed", "session_id", sessionID)
}

// Release closes the session only while sink is still the attached one.
// Transports call it when their observer disconnects so a newer sink survives.
func (r *Registry) Release(sessionID string, sink ports.ProgressSink) {
	s := r.lookup(sessionID)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sink != sink {
		return
	}
	s.detach()
	logging.Logger.Info("Progress observer disconnected", "session_id", sessionID)
}

// State reports the lifecycle state of a session
func (r *Registry) State(sessionID string) SessionState {
	s := r.lookup(sessionID)
	if s == nil {
		return StatePending
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sink != nil {
		return StateOpen
	}
	return StateClosed
}

// Run sends keep-alives to every open sink until ctx is done.
// Closed sessions are forgotten after one full interval.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logging.Logger.Debug("Progress keep-alive loop started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			logging.Logger.Debug("Progress keep-alive loop stopped")
			return nil
		case now := <-ticker.C:
			r.tick(now)
		}
	}
}

func (r *Registry) tick(now time.Time) {
	r.mu.Lock()
	for id, s := range r.sessions {
		s.mu.Lock()
		if s.sink == nil && !s.closedAt.IsZero() && now.Sub(s.closedAt) >= r.interval {
			delete(r.sessions, id)
		}
		s.mu.Unlock()
	}
	snapshot := make(map[string]*session, len(r.sessions))
	for id, s := range r.sessions {
		snapshot[id] = s
	}
	r.mu.Unlock()

	for id, s := range snapshot {
		s.mu.Lock()
		if s.sink != nil {
			if err := s.sink.KeepAlive(); err != nil {
				logging.Logger.Warn("Keep-alive failed, detaching sink", "session_id", id, "error", err)
				s.detach()
			}
		}
		s.mu.Unlock()
	}
}

func (r *Registry) closeAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		s.mu.Lock()
		s.detach()
		s.mu.Unlock()
	}
}

func (r *Registry) lookup(sessionID string) *session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[sessionID]
}

// deliver sends event to the attached sink. Caller holds s.mu.
func (s *session) deliver(event domain.ProgressEvent) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Send(event); err != nil {
		logging.Logger.Warn("Progress delivery failed, detaching sink",
			"session_id", event.SessionID,
			"error", err)
		s.detach()
	}
}

// detach closes and forgets the sink. Caller holds s.mu.
func (s *session) detach() {
	if s.sink == nil {
		return
	}
	s.sink.Close()
	s.sink = nil
	s.closedAt = time.Now()
}

func logEvent(event domain.ProgressEvent) {
	attrs := []any{"session_id", event.SessionID, "type", string(event.Severity), "message", event.Message}
	switch event.Severity {
	case domain.SeverityError:
		logging.Logger.Error("Progress", attrs...)
	case domain.SeverityWarning:
		logging.Logger.Warn("Progress", attrs...)
	default:
		logging.Logger.Info("Progress", attrs...)
	}
}
