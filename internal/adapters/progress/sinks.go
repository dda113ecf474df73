package progress

import (
	"errors"
	"io"
	"sync"

	"codetally/internal/domain"
	"codetally/internal/ports"
)

// ErrSinkClosed is returned when sending to a closed sink
var ErrSinkClosed = errors.New("progress sink closed")

// EncodeFunc renders one event in a transport's wire format
type EncodeFunc func(domain.ProgressEvent) ([]byte, error)

// StreamSink writes encoded events to an io.Writer, flushing after every write
type StreamSink struct {
	closed    bool
	done      chan struct{}
	encode    EncodeFunc
	flush     func()
	keepAlive []byte
	mu        sync.Mutex
	w         io.Writer
}

// Verify interface compliance at compile time
var _ ports.ProgressSink = (*StreamSink)(nil)

// NewStreamSink creates a sink over w. keepAlive may be nil when the transport needs none,
// and flush may be nil for unbuffered writers.
func NewStreamSink(w io.Writer, encode EncodeFunc, keepAlive []byte, flush func()) *StreamSink {
	return &StreamSink{
		done:      make(chan struct{}),
		encode:    encode,
		flush:     flush,
		keepAlive: keepAlive,
		w:         w,
	}
}

// Send implements ports.ProgressSink
func (s *StreamSink) Send(event domain.ProgressEvent) error {
	data, err := s.encode(event)
	if err != nil {
		return err
	}
	return s.write(data)
}

// KeepAlive implements ports.ProgressSink
func (s *StreamSink) KeepAlive() error {
	if len(s.keepAlive) == 0 {
		return nil
	}
	return s.write(s.keepAlive)
}

// Close implements ports.ProgressSink. It is safe to call more than once.
func (s *StreamSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}

// Done is closed once the sink is closed
func (s *StreamSink) Done() <-chan struct{} {
	return s.done
}

func (s *StreamSink) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}
	if _, err := s.w.Write(data); err != nil {
		return err
	}
	if s.flush != nil {
		s.flush()
	}
	return nil
}

// ChannelSink hands events to an in-process consumer through a buffered channel
type ChannelSink struct {
	done   chan struct{}
	events chan domain.ProgressEvent
	once   sync.Once
}

// Verify interface compliance at compile time
var _ ports.ProgressSink = (*ChannelSink)(nil)

// NewChannelSink creates a sink buffering up to buffer events
func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{
		done:   make(chan struct{}),
		events: make(chan domain.ProgressEvent, buffer),
	}
}

// Send implements ports.ProgressSink. It blocks while the buffer is full.
func (c *ChannelSink) Send(event domain.ProgressEvent) error {
	select {
	case <-c.done:
		return ErrSinkClosed
	default:
	}
	select {
	case c.events <- event:
		return nil
	case <-c.done:
		return ErrSinkClosed
	}
}

// KeepAlive implements ports.ProgressSink
func (c *ChannelSink) KeepAlive() error {
	return nil
}

// Close implements ports.ProgressSink
func (c *ChannelSink) Close() {
	c.once.Do(func() { close(c.done) })
}

// Events returns the event stream. It is never closed; watch Done instead.
func (c *ChannelSink) Events() <-chan domain.ProgressEvent {
	return c.events
}

// Done is closed once the sink is closed
func (c *ChannelSink) Done() <-chan struct{} {
	return c.done
}
