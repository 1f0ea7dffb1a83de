package tui

// Section identifies which part of the page is on screen.
type Section int

const (
	SectionHero Section = iota
	SectionSkills
	SectionProjects
	SectionContact
)

var sectionTitles = map[Section]string{
	SectionHero:     "About",
	SectionSkills:   "Skills",
	SectionProjects: "Projects",
	SectionContact:  "Contact",
}

var sectionOrder = []Section{SectionHero, SectionSkills, SectionProjects, SectionContact}

// Title returns the header label for the section.
func (s Section) Title() string {
	return sectionTitles[s]
}

// ThemeResolvedMsg carries the theme resolved at startup.
type ThemeResolvedMsg struct {
	Dark bool
}

// EnvironmentChangedMsg reports a change in the ambient dark-mode signal.
type EnvironmentChangedMsg struct {
	Dark bool
}

// SubmitResultMsg reports the outcome of the in-flight contact send.
type SubmitResultMsg struct {
	Err error
}

// StatusResetMsg asks the form to return to idle. Generation guards
// against stale timers firing after a newer transition.
type StatusResetMsg struct {
	Generation int
}
