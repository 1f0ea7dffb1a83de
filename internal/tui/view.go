package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/folio-sh/folio/internal/contact"
)

const skillBarWidth = 5

// View renders the page: fixed header, active section, fixed footer.
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	switch m.section {
	case SectionSkills:
		sections = append(sections, m.renderSkills())
	case SectionProjects:
		sections = append(sections, m.renderProjects())
	case SectionContact:
		sections = append(sections, m.renderContact())
	default:
		sections = append(sections, m.renderHero())
	}

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, len(sectionOrder))
	for i, s := range sectionOrder {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == m.section {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}

	name := m.theme.Title.Render(m.site.Profile.Name)
	row := lipgloss.JoinHorizontal(lipgloss.Center, name, "  ", lipgloss.JoinHorizontal(lipgloss.Center, tabs...))
	return m.theme.Header.Render(row)
}

func (m Model) renderHero() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.site.Profile.Name))
	b.WriteString("\n")
	if m.site.Profile.Tagline != "" {
		b.WriteString(m.theme.Tagline.Render(m.site.Profile.Tagline))
		b.WriteString("\n")
	}
	if m.site.Profile.Bio != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Body.Width(m.contentWidth()).Render(m.site.Profile.Bio))
		b.WriteString("\n")
	}
	if m.site.Profile.Email != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render(m.site.Profile.Email))
		b.WriteString("\n")
	}
	for _, link := range m.site.Profile.Links {
		b.WriteString(m.theme.LinkLabel.Render(link.Label))
		b.WriteString("  ")
		b.WriteString(m.theme.LinkURL.Render(link.URL))
		b.WriteString("\n")
	}

	return m.theme.SectionFrame.Render(b.String())
}

func (m Model) renderSkills() string {
	var b strings.Builder

	for _, category := range m.site.Categories() {
		b.WriteString(m.theme.Accent.Render(category))
		b.WriteString("\n")
		for _, skill := range m.site.SkillsIn(category) {
			bar := m.renderSkillBar(skill.Level)
			b.WriteString(fmt.Sprintf("  %-24s %s\n", m.theme.Body.Render(skill.Name), bar))
		}
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		b.WriteString(m.theme.Muted.Render("Nothing here yet."))
	}

	return m.theme.SectionFrame.Render(b.String())
}

func (m Model) renderSkillBar(level int) string {
	if level < 0 {
		level = 0
	}
	if level > skillBarWidth {
		level = skillBarWidth
	}
	filled := m.theme.BarFilled.Render(strings.Repeat("█", level))
	empty := m.theme.BarEmpty.Render(strings.Repeat("░", skillBarWidth-level))
	return filled + empty
}

func (m Model) renderProjects() string {
	if len(m.site.Projects) == 0 {
		return m.theme.SectionFrame.Render(m.theme.Muted.Render("Nothing here yet."))
	}

	cards := make([]string, 0, len(m.site.Projects))
	for _, project := range m.site.Projects {
		var b strings.Builder
		b.WriteString(m.theme.CardTitle.Render(project.Title))
		b.WriteString("\n")
		if project.Description != "" {
			b.WriteString(m.theme.Body.Width(m.contentWidth() - 6).Render(project.Description))
			b.WriteString("\n")
		}
		if len(project.Tags) > 0 {
			b.WriteString(m.theme.TagBadge.Render("#" + strings.Join(project.Tags, " #")))
			b.WriteString("\n")
		}
		if project.URL != "" {
			b.WriteString(m.theme.LinkURL.Render(project.URL))
			b.WriteString("\n")
		}
		if project.LastActivity != nil {
			b.WriteString(m.theme.Muted.Render(activityLabel(*project.LastActivity)))
			b.WriteString("\n")
		}
		cards = append(cards, m.theme.Card.Render(strings.TrimRight(b.String(), "\n")))
	}

	return m.theme.SectionFrame.Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func activityLabel(when time.Time) string {
	days := int(time.Since(when).Hours() / 24)
	switch {
	case days <= 0:
		return "active today"
	case days == 1:
		return "active yesterday"
	default:
		return fmt.Sprintf("active %d days ago", days)
	}
}

func (m Model) renderContact() string {
	var b strings.Builder

	b.WriteString(m.theme.Body.Render("Get in touch"))
	b.WriteString("\n\n")

	b.WriteString(m.renderField("Name", contact.FieldName, m.nameInput.View()))
	b.WriteString(m.renderField("Email", contact.FieldEmail, m.emailInput.View()))
	b.WriteString(m.renderField("Message", contact.FieldMessage, m.messageInput.View()))

	b.WriteString(m.renderSubmitRow())

	return m.theme.SectionFrame.Render(b.String())
}

func (m Model) renderField(label string, field contact.Field, input string) string {
	var b strings.Builder

	b.WriteString(m.theme.FieldLabel.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if msg := m.form.Error(field); msg != "" {
		b.WriteString(m.theme.FieldError.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderSubmitRow() string {
	switch m.form.State() {
	case contact.StateSubmitting:
		return m.spinner.View() + m.theme.Muted.Render(" Sending…")
	case contact.StateSuccess:
		return m.theme.SuccessBanner.Render("Message sent. Thank you!")
	case contact.StateError:
		return m.theme.ErrorBanner.Render("Something went wrong. Please try again later.")
	}

	label := "[ Send message ]"
	if m.focus == focusSubmit {
		return m.theme.Accent.Bold(true).Render("> " + label)
	}
	return m.theme.Muted.Render("  " + label)
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"tab / 1-4", "switch section"},
		{"t", "toggle light/dark theme"},
		{"enter", "edit contact form"},
		{"ctrl+s", "send message"},
		{"esc", "leave form / quit"},
		{"q", "quit"},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(m.theme.HelpKey.Width(12).Render(row[0]))
		b.WriteString(m.theme.HelpDesc.Render(row[1]))
		b.WriteString("\n")
	}

	return m.theme.SectionFrame.Render(b.String())
}

func (m Model) renderFooter() string {
	left := m.site.Footer
	if left == "" {
		left = "Press ? for keys."
	}
	right := fmt.Sprintf("theme: %s", m.theme.Name)
	return m.theme.Footer.Render(left + "  •  " + right)
}

func (m Model) contentWidth() int {
	width := m.width - 4
	if width > 72 {
		width = 72
	}
	if width < 20 {
		width = 20
	}
	return width
}
