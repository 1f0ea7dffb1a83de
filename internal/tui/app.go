package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-sh/folio/internal/contact"
	"github.com/folio-sh/folio/internal/content"
	"github.com/folio-sh/folio/internal/logger"
	"github.com/folio-sh/folio/internal/preferences"
)

const (
	focusNav = iota - 1
	focusName
	focusEmail
	focusMessage
	focusSubmit
)

// Options configures the TUI model.
type Options struct {
	Site        *content.Site
	Preferences *preferences.Store
	Signal      preferences.EnvironmentSignal
	Sender      contact.Sender
	SendTimeout time.Duration
	Logger      *logger.Logger
}

// Model is the single-page portfolio application.
type Model struct {
	site   *content.Site
	prefs  *preferences.Store
	signal preferences.EnvironmentSignal
	sender contact.Sender
	log    *logger.Logger

	theme       Theme
	section     Section
	showHelp    bool
	sendTimeout time.Duration

	form         *contact.Form
	nameInput    textinput.Model
	emailInput   textinput.Model
	messageInput textarea.Model
	focus        int

	spinner spinner.Model

	envChanges chan bool
	stopSignal func()

	width  int
	height int
}

// NewModel builds the application model. The theme is resolved during
// Init, after the program has mounted.
func NewModel(opts Options) Model {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "What would you like to talk about?"
	message.CharLimit = 2000
	message.ShowLineNumbers = false
	message.SetHeight(5)

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		site:         opts.Site,
		prefs:        opts.Preferences,
		signal:       opts.Signal,
		sender:       opts.Sender,
		sendTimeout:  opts.SendTimeout,
		log:          opts.Logger,
		theme:        LightTheme(),
		section:      SectionHero,
		form:         contact.NewForm(),
		nameInput:    name,
		emailInput:   email,
		messageInput: message,
		focus:        focusNav,
		spinner:      s,
		width:        80,
		height:       24,
	}

	if opts.Signal != nil {
		m.envChanges = make(chan bool, 1)
		changes := m.envChanges
		m.stopSignal = opts.Signal.Subscribe(func(dark bool) {
			select {
			case changes <- dark:
			default:
			}
		})
	}

	m.applyTheme(m.theme)
	return m
}

// Init resolves the startup theme and starts the environment watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.resolveThemeCmd()}
	if m.envChanges != nil {
		cmds = append(cmds, m.waitForEnvironment())
	}
	return tea.Batch(cmds...)
}

// Teardown cancels the environment subscription. Called on quit so no
// watcher keeps running against a disposed model.
func (m *Model) Teardown() {
	if m.stopSignal != nil {
		m.stopSignal()
		m.stopSignal = nil
	}
}

// Theme exposes the active style set.
func (m Model) Theme() Theme {
	return m.theme
}

// Section exposes the visible section.
func (m Model) Section() Section {
	return m.section
}

// Form exposes the contact form state.
func (m Model) Form() *contact.Form {
	return m.form
}

// applyTheme swaps the style set and restyles the form inputs so every
// rendered rune follows the active preference.
func (m *Model) applyTheme(theme Theme) {
	m.theme = theme
	m.spinner.Style = theme.Spinner

	for _, input := range []*textinput.Model{&m.nameInput, &m.emailInput} {
		input.PromptStyle = theme.FieldLabel
		input.TextStyle = theme.Body
		input.PlaceholderStyle = theme.Muted
	}
}

func (m *Model) fieldFor(focus int) (contact.Field, bool) {
	switch focus {
	case focusName:
		return contact.FieldName, true
	case focusEmail:
		return contact.FieldEmail, true
	case focusMessage:
		return contact.FieldMessage, true
	}
	return "", false
}

func (m *Model) inputValue(field contact.Field) string {
	switch field {
	case contact.FieldName:
		return m.nameInput.Value()
	case contact.FieldEmail:
		return m.emailInput.Value()
	case contact.FieldMessage:
		return m.messageInput.Value()
	}
	return ""
}

func (m *Model) clearInputs() {
	m.nameInput.SetValue("")
	m.emailInput.SetValue("")
	m.messageInput.SetValue("")
}

func (m *Model) focusInput(focus int) tea.Cmd {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.messageInput.Blur()

	m.focus = focus
	switch focus {
	case focusName:
		return m.nameInput.Focus()
	case focusEmail:
		return m.emailInput.Focus()
	case focusMessage:
		return m.messageInput.Focus()
	}
	return nil
}

// leaveInput records a blur on the field being left so its validation
// state updates exactly like moving focus out of a web form field.
func (m *Model) leaveInput() {
	if field, ok := m.fieldFor(m.focus); ok {
		m.form.Blur(field, m.inputValue(field))
	}
}
