package content

import (
	"time"
)

// Site is the full portfolio content document.
type Site struct {
	Profile  Profile   `yaml:"profile"`
	Skills   []Skill   `yaml:"skills,omitempty" validate:"omitempty,dive"`
	Projects []Project `yaml:"projects,omitempty" validate:"omitempty,dive"`
	Footer   string    `yaml:"footer,omitempty"`
}

// Profile is the hero/about section content.
type Profile struct {
	Name    string `yaml:"name" validate:"required,min=1,max=100"`
	Tagline string `yaml:"tagline,omitempty" validate:"max=200"`
	Bio     string `yaml:"bio,omitempty"`
	Email   string `yaml:"email,omitempty" validate:"omitempty,email"`
	Links   []Link `yaml:"links,omitempty" validate:"omitempty,dive"`
}

// Link is a labelled external URL.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required,url"`
}

// Skill is one entry in the skills showcase.
type Skill struct {
	Name     string `yaml:"name" validate:"required"`
	Level    int    `yaml:"level" validate:"required,min=1,max=5"`
	Category string `yaml:"category,omitempty"`
}

// Project is one entry in the project gallery.
type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	URL         string   `yaml:"url,omitempty" validate:"omitempty,url"`

	// RepoPath points at a local git checkout; when set, the gallery
	// shows the repository's last commit time.
	RepoPath string `yaml:"repo_path,omitempty"`

	// LastActivity is filled by Enrich, not by the content file.
	LastActivity *time.Time `yaml:"-"`
}

// Categories returns skill category names in first-seen order.
func (s *Site) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, skill := range s.Skills {
		category := skill.Category
		if category == "" {
			category = "General"
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	return out
}

// SkillsIn returns the skills belonging to a category.
func (s *Site) SkillsIn(category string) []Skill {
	var out []Skill
	for _, skill := range s.Skills {
		c := skill.Category
		if c == "" {
			c = "General"
		}
		if c == category {
			out = append(out, skill)
		}
	}
	return out
}
