package preferences

import (
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// EnvironmentSignal exposes the ambient dark-mode preference. Subscribe
// registers a change callback and returns a stop function; callers must
// invoke it on teardown so no watcher outlives its component.
type EnvironmentSignal interface {
	Dark() bool
	Subscribe(fn func(dark bool)) (stop func())
}

// TerminalSignal derives the ambient preference from the terminal
// background colour. Terminals do not push change notifications, so
// Subscribe polls at a coarse interval.
type TerminalSignal struct {
	interval time.Duration
	query    func() bool
}

// NewTerminalSignal creates a TerminalSignal polling at the given
// interval. A non-positive interval disables change notifications.
func NewTerminalSignal(interval time.Duration) *TerminalSignal {
	return &TerminalSignal{
		interval: interval,
		query:    lipgloss.HasDarkBackground,
	}
}

// Dark reports whether the terminal background is dark.
func (t *TerminalSignal) Dark() bool {
	return t.query()
}

// Subscribe polls the terminal background and invokes fn on changes.
// The returned stop function is idempotent.
func (t *TerminalSignal) Subscribe(fn func(dark bool)) func() {
	if t.interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		last := t.query()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				current := t.query()
				if current != last {
					last = current
					fn(current)
				}
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}
