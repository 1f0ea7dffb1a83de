package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/folio-sh/folio/internal/preferences"
)

// Theme bundles every style the views need, derived from the active
// preference. Views never construct colours themselves.
type Theme struct {
	Name preferences.Theme

	Title   lipgloss.Style
	Tagline lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style

	Header       lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Footer       lipgloss.Style
	SectionFrame lipgloss.Style

	Card       lipgloss.Style
	CardTitle  lipgloss.Style
	TagBadge   lipgloss.Style
	BarFilled  lipgloss.Style
	BarEmpty   lipgloss.Style
	LinkLabel  lipgloss.Style
	LinkURL    lipgloss.Style
	FieldLabel lipgloss.Style
	FieldError lipgloss.Style

	SuccessBanner lipgloss.Style
	ErrorBanner   lipgloss.Style
	Spinner       lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	subtle  lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
}

var (
	lightPalette = palette{
		primary: lipgloss.Color("#1d4ed8"),
		accent:  lipgloss.Color("#9333ea"),
		text:    lipgloss.Color("#111827"),
		muted:   lipgloss.Color("#6b7280"),
		subtle:  lipgloss.Color("#d1d5db"),
		success: lipgloss.Color("#15803d"),
		danger:  lipgloss.Color("#b91c1c"),
	}

	darkPalette = palette{
		primary: lipgloss.Color("#60a5fa"),
		accent:  lipgloss.Color("#c084fc"),
		text:    lipgloss.Color("#e5e7eb"),
		muted:   lipgloss.Color("#9ca3af"),
		subtle:  lipgloss.Color("#374151"),
		success: lipgloss.Color("#4ade80"),
		danger:  lipgloss.Color("#f87171"),
	}
)

// ThemeFor returns the style set matching a theme preference.
func ThemeFor(pref preferences.Theme) Theme {
	if pref == preferences.ThemeDark {
		return buildTheme(preferences.ThemeDark, darkPalette)
	}
	return buildTheme(preferences.ThemeLight, lightPalette)
}

// LightTheme returns the light style set.
func LightTheme() Theme {
	return ThemeFor(preferences.ThemeLight)
}

// DarkTheme returns the dark style set.
func DarkTheme() Theme {
	return ThemeFor(preferences.ThemeDark)
}

func buildTheme(name preferences.Theme, p palette) Theme {
	body := lipgloss.NewStyle().Foreground(p.text)

	return Theme{
		Name: name,

		Title:   body.Bold(true).Foreground(p.primary),
		Tagline: body.Italic(true).Foreground(p.accent),
		Body:    body,
		Muted:   lipgloss.NewStyle().Foreground(p.muted),
		Accent:  lipgloss.NewStyle().Foreground(p.accent),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.subtle).
			PaddingBottom(1).
			MarginBottom(1),
		Tab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),
		Footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.subtle).
			PaddingTop(1).
			MarginTop(1),
		SectionFrame: lipgloss.NewStyle().
			Padding(0, 2),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.subtle).
			Padding(0, 2).
			MarginBottom(1),
		CardTitle: body.Bold(true).Foreground(p.primary),
		TagBadge: lipgloss.NewStyle().
			Foreground(p.accent).
			Faint(true),
		BarFilled:  lipgloss.NewStyle().Foreground(p.primary),
		BarEmpty:   lipgloss.NewStyle().Foreground(p.subtle),
		LinkLabel:  body.Bold(true),
		LinkURL:    lipgloss.NewStyle().Foreground(p.primary).Underline(true),
		FieldLabel: body.Bold(true),
		FieldError: lipgloss.NewStyle().Foreground(p.danger),

		SuccessBanner: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.success).
			Padding(0, 2),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.danger).
			Padding(0, 2),
		Spinner:  lipgloss.NewStyle().Foreground(p.primary),
		HelpKey:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(p.muted),
	}
}
