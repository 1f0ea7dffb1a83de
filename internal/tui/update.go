package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-sh/folio/internal/contact"
)

// Update handles incoming messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case ThemeResolvedMsg:
		theme := m.prefs.Initialize(msg.Dark)
		m.applyTheme(ThemeFor(theme))
		return m, nil

	case EnvironmentChangedMsg:
		theme := m.prefs.OnEnvironmentChange(msg.Dark)
		m.applyTheme(ThemeFor(theme))
		return m, m.waitForEnvironment()

	case SubmitResultMsg:
		generation, ok := m.form.Resolve(msg.Err)
		if !ok {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Error(msg.Err, "contact submission failed")
		} else {
			m.log.Info("contact submission delivered")
			m.clearInputs()
		}
		return m, resetStatusCmd(generation)

	case StatusResetMsg:
		m.form.ResetToIdle(msg.Generation)
		return m, nil

	case spinner.TickMsg:
		if !m.form.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Teardown()
		return m, tea.Quit
	}

	if m.section == SectionContact && m.focus != focusNav {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		m.Teardown()
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "t":
		theme := m.prefs.Toggle()
		m.applyTheme(ThemeFor(theme))
		return m, nil

	case "tab", "right", "l":
		m.section = m.nextSection(1)
		return m, nil

	case "shift+tab", "left", "h":
		m.section = m.nextSection(-1)
		return m, nil

	case "1", "2", "3", "4":
		m.section = sectionOrder[int(msg.String()[0]-'1')]
		return m, nil

	case "enter", "i":
		if m.section == SectionContact {
			return m, m.focusInput(focusName)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		m.leaveInput()
		m.focusInput(focusNav)
		return m, nil

	case "tab":
		m.leaveInput()
		next := m.focus + 1
		if next > focusSubmit {
			next = focusName
		}
		return m, m.focusInput(next)

	case "shift+tab":
		m.leaveInput()
		prev := m.focus - 1
		if prev < focusName {
			prev = focusSubmit
		}
		return m, m.focusInput(prev)

	case "ctrl+s":
		m.leaveInput()
		return m, m.trySubmit()

	case "enter":
		switch m.focus {
		case focusName, focusEmail:
			m.leaveInput()
			return m, m.focusInput(m.focus + 1)
		case focusSubmit:
			return m, m.trySubmit()
		}
		// Enter inside the textarea inserts a newline.
	}

	return m.routeToInput(msg)
}

// routeToInput forwards the key to the focused input and mirrors the new
// value into the form so touched fields get live validation feedback.
func (m Model) routeToInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.form.Change(contact.FieldName, m.nameInput.Value())
	case focusEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
		m.form.Change(contact.FieldEmail, m.emailInput.Value())
	case focusMessage:
		m.messageInput, cmd = m.messageInput.Update(msg)
		m.form.Change(contact.FieldMessage, m.messageInput.Value())
	}

	return m, cmd
}

// trySubmit starts a submission when the form allows one. The submit
// trigger stays effectively disabled while a send is in flight because
// the form rejects any submit outside the idle state.
func (m *Model) trySubmit() tea.Cmd {
	if !m.form.Submit() {
		return nil
	}

	payload := contact.MessageFromRecord(m.form.Record())
	m.log.Info("contact submission started")
	return tea.Batch(m.spinner.Tick, submitCmd(m.sender, payload, m.sendTimeout))
}

func (m Model) nextSection(delta int) Section {
	for i, s := range sectionOrder {
		if s == m.section {
			next := (i + delta + len(sectionOrder)) % len(sectionOrder)
			return sectionOrder[next]
		}
	}
	return SectionHero
}

func (m *Model) resizeInputs() {
	width := m.width - 8
	if width > 60 {
		width = 60
	}
	if width < 20 {
		width = 20
	}
	m.nameInput.Width = width
	m.emailInput.Width = width
	m.messageInput.SetWidth(width)
}
