package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"

	adapterprogress "codetally/internal/adapters/progress"
	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/ui"
)

const progressBuffer = 64

// errCancelled is returned when the user interrupts the progress view
var errCancelled = errors.New("cancelled by user")

// progressTask is a unit of work publishing its progress under sessionID
type progressTask func(ctx context.Context, sessionID string) error

// runWithProgress runs task under a fresh progress session. On a terminal the events
// are shown in a live view; otherwise (or with plain) they are written to stderr as lines.
func runWithProgress(ctx context.Context, registry *adapterprogress.Registry, title string, plain bool, task progressTask) error {
	sessionID := uuid.New().String()
	defer registry.Close(sessionID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if plain || !isTerminal(os.Stderr) {
		sink := adapterprogress.NewStreamSink(os.Stderr, encodePlain, nil, nil)
		if err := registry.Open(sessionID, sink); err != nil {
			return err
		}
		return task(ctx, sessionID)
	}

	sink := adapterprogress.NewChannelSink(progressBuffer)
	if err := registry.Open(sessionID, sink); err != nil {
		return err
	}
	// Runs before registry.Close so a publisher blocked on the full buffer is released first
	defer sink.Close()

	view := ui.NewProgressView(title, sink, func() error { return task(ctx, sessionID) }, cancel)
	logging.Logger.Debug("Starting progress view", "session_id", sessionID)
	if _, err := tea.NewProgram(view, tea.WithOutput(os.Stderr)).Run(); err != nil {
		return fmt.Errorf("error running progress view: %w", err)
	}
	if view.Cancelled() {
		return errCancelled
	}
	return view.Err()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// encodePlain renders an event as a coloured "15:04:05 message" line
func encodePlain(event domain.ProgressEvent) ([]byte, error) {
	return []byte(fmt.Sprintf("%s %s\n",
		color.HiBlackString(event.Timestamp.Local().Format("15:04:05")),
		severityColor(event.Severity).Sprint(event.Message))), nil
}

func severityColor(severity domain.Severity) *color.Color {
	switch severity {
	case domain.SeveritySuccess:
		return color.New(color.FgGreen)
	case domain.SeverityWarning:
		return color.New(color.FgYellow)
	case domain.SeverityError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Reset)
	}
}
