package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-sh/folio/internal/contact"
)

// resolveThemeCmd queries the environment signal once and reports the
// result so the preference store can run its startup resolution.
func (m Model) resolveThemeCmd() tea.Cmd {
	signal := m.signal
	return func() tea.Msg {
		dark := false
		if signal != nil {
			dark = signal.Dark()
		}
		return ThemeResolvedMsg{Dark: dark}
	}
}

// waitForEnvironment blocks on the next ambient signal change. The
// update loop re-issues it after every received message.
func (m Model) waitForEnvironment() tea.Cmd {
	changes := m.envChanges
	return func() tea.Msg {
		dark, ok := <-changes
		if !ok {
			return nil
		}
		return EnvironmentChangedMsg{Dark: dark}
	}
}

// submitCmd runs the send collaborator asynchronously. Exactly one of
// these is in flight at a time; the form's submitting state guards it.
func submitCmd(sender contact.Sender, msg contact.Message, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return SubmitResultMsg{Err: sender.Send(ctx, msg)}
	}
}

// resetStatusCmd schedules the return to idle after a status banner.
// The generation token lets the form ignore the tick if a newer
// transition superseded it.
func resetStatusCmd(generation int) tea.Cmd {
	return tea.Tick(contact.ResetDelay, func(time.Time) tea.Msg {
		return StatusResetMsg{Generation: generation}
	})
}
