package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"codetally/internal/adapters/progress"
	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/theme"
)

const defaultVisibleLines = 12

type progressEventMsg domain.ProgressEvent

type taskDoneMsg struct {
	err error
}

// ProgressView shows a spinner with the latest progress events while a task runs
type ProgressView struct {
	cancel       context.CancelFunc
	cancelled    bool
	done         bool
	err          error
	events       []domain.ProgressEvent
	keys         ProgressKeys
	sink         *progress.ChannelSink
	spinner      spinner.Model
	task         func() error
	title        string
	visibleLines int
}

// NewProgressView creates a view that runs task and renders events arriving on sink.
// cancel is invoked when the user interrupts the view.
func NewProgressView(title string, sink *progress.ChannelSink, task func() error, cancel context.CancelFunc) *ProgressView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	return &ProgressView{
		cancel:       cancel,
		keys:         newProgressKeys(),
		sink:         sink,
		spinner:      s,
		task:         task,
		title:        title,
		visibleLines: defaultVisibleLines,
	}
}

// Cancelled reports whether the user interrupted the task
func (v *ProgressView) Cancelled() bool {
	return v.cancelled
}

// Err returns the task's error once it has finished
func (v *ProgressView) Err() error {
	return v.err
}

func (v *ProgressView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.waitForEvent(), v.runTask())
}

func (v *ProgressView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressEventMsg:
		v.push(domain.ProgressEvent(msg))
		return v, v.waitForEvent()

	case taskDoneMsg:
		v.drain()
		v.done = true
		v.err = msg.err
		logging.Logger.Debug("Progress view task finished", "error", msg.err)
		return v, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Cancel) {
			v.cancelled = true
			if v.cancel != nil {
				v.cancel()
			}
			return v, tea.Quit
		}
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *ProgressView) View() string {
	var b strings.Builder
	if v.done || v.cancelled {
		b.WriteString(theme.TitleStyle.Render(v.title))
	} else {
		b.WriteString(fmt.Sprintf("%s %s", v.spinner.View(), theme.TitleStyle.Render(v.title)))
	}
	b.WriteString("\n")
	for _, event := range v.events {
		b.WriteString(renderEvent(event))
		b.WriteString("\n")
	}
	if !v.done && !v.cancelled {
		b.WriteString(renderBinding(v.keys.Cancel))
		b.WriteString("\n")
	}
	return b.String()
}

// push appends event, keeping only the most recent visible lines
func (v *ProgressView) push(event domain.ProgressEvent) {
	v.events = append(v.events, event)
	if over := len(v.events) - v.visibleLines; over > 0 {
		v.events = v.events[over:]
	}
}

// drain renders events still buffered when the task finishes
func (v *ProgressView) drain() {
	for {
		select {
		case event := <-v.sink.Events():
			v.push(event)
		default:
			return
		}
	}
}

func (v *ProgressView) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case event := <-v.sink.Events():
			return progressEventMsg(event)
		case <-v.sink.Done():
			return nil
		}
	}
}

func (v *ProgressView) runTask() tea.Cmd {
	return func() tea.Msg {
		return taskDoneMsg{err: v.task()}
	}
}

func renderEvent(event domain.ProgressEvent) string {
	return fmt.Sprintf("%s %s",
		theme.TimestampStyle.Render(event.Timestamp.Local().Format("15:04:05")),
		theme.SeverityStyle(event.Severity).Render(event.Message))
}
