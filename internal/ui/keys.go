package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"codetally/internal/theme"
)

// ProgressKeys defines the key bindings active while a task is running
type ProgressKeys struct {
	Cancel key.Binding
}

func newProgressKeys() ProgressKeys {
	return ProgressKeys{
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

// renderBinding renders a binding as "key description"
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return theme.HelpKeyStyle.Render(help.Key) + " " + theme.MutedStyle.Render(help.Desc)
}
