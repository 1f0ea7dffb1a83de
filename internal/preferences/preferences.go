package preferences

import (
	"sync"
)

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the value is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Flip returns the opposite theme.
func (t Theme) Flip() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// Storage persists the single theme slot. Load returns ok=false when no
// value has ever been saved.
type Storage interface {
	Load() (Theme, bool, error)
	Save(Theme) error
}

// Applier receives the active theme whenever it changes. It must not fail.
type Applier func(Theme)

// Logger is the subset of the application logger the store needs.
type Logger interface {
	Debug(msg string)
}

// Store resolves and persists the active theme. An explicit user choice
// (Toggle or Set) always wins over the environment signal; until the user
// has chosen, the environment default is adopted but never written back.
type Store struct {
	mu       sync.Mutex
	storage  Storage
	apply    Applier
	log      Logger
	current  Theme
	explicit bool
	ready    bool
}

// NewStore creates a Store. apply may be nil until the UI has mounted;
// SetApplier installs it later.
func NewStore(storage Storage, apply Applier, log Logger) *Store {
	return &Store{
		storage: storage,
		apply:   apply,
		log:     log,
		current: ThemeLight,
	}
}

// SetApplier installs the side-effecting theme applier.
func (s *Store) SetApplier(apply Applier) {
	s.mu.Lock()
	s.apply = apply
	s.mu.Unlock()
}

// Initialize resolves the startup theme. A persisted slot wins; otherwise
// the environment signal decides, without being persisted. Call once,
// after the UI has mounted.
func (s *Store) Initialize(environmentDark bool) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return s.current
	}
	s.ready = true

	if s.storage != nil {
		theme, ok, err := s.storage.Load()
		if err != nil {
			s.debug("theme slot unavailable, using in-memory preference")
		} else if ok && theme.Valid() {
			s.current = theme
			s.explicit = true
			s.applyLocked()
			return s.current
		}
	}

	s.current = ThemeLight
	if environmentDark {
		s.current = ThemeDark
	}
	s.applyLocked()
	return s.current
}

// OnEnvironmentChange reacts to a change in the ambient dark-mode signal.
// It is a no-op once the user has made an explicit choice.
func (s *Store) OnEnvironmentChange(dark bool) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.explicit {
		return s.current
	}

	next := ThemeLight
	if dark {
		next = ThemeDark
	}
	if next != s.current {
		s.current = next
		s.applyLocked()
	}
	return s.current
}

// Toggle flips the theme, persists it, and applies it. This is the only
// path that writes the persisted slot besides Set.
func (s *Store) Toggle() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adoptLocked(s.current.Flip())
}

// Set records an explicit theme choice, persisting it like Toggle.
func (s *Store) Set(theme Theme) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !theme.Valid() {
		return s.current
	}
	return s.adoptLocked(theme)
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Explicit reports whether the user has made a persisted choice.
func (s *Store) Explicit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.explicit
}

func (s *Store) adoptLocked(theme Theme) Theme {
	s.current = theme
	s.explicit = true
	if s.storage != nil {
		if err := s.storage.Save(theme); err != nil {
			// Degrade to in-memory preference for this session.
			s.debug("failed to persist theme preference")
		}
	}
	s.applyLocked()
	return s.current
}

func (s *Store) applyLocked() {
	if s.apply != nil {
		s.apply(s.current)
	}
}

func (s *Store) debug(msg string) {
	if s.log != nil {
		s.log.Debug(msg)
	}
}
