package config

import (
	"time"
)

// FolioConfig is the top-level configuration structure for folio.
type FolioConfig struct {
	Owner   Owner      `yaml:"owner"`
	UI      UISettings `yaml:"ui"`
	Content Content    `yaml:"content"`
}

// Owner describes whose portfolio this is.
type Owner struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`              // Typed out on the home pane
	Tagline  string `yaml:"tagline,omitempty"`  // One line under the title
	Email    string `yaml:"email"`              // Recipient of the contact form
	Location string `yaml:"location,omitempty"` // e.g. "Lisbon, PT"
	Links    []Link `yaml:"links,omitempty"`
}

// Link is a labelled URL shown on the home and contact panes.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// UISettings tunes the terminal front end.
type UISettings struct {
	TransitionDuration time.Duration `yaml:"transitionDuration,omitempty"` // Pane handoff length
	CarouselInterval   time.Duration `yaml:"carouselInterval,omitempty"`   // Services autoplay period
	ProjectsPerPage    int           `yaml:"projectsPerPage,omitempty"`
	ServicesPerSlide   int           `yaml:"servicesPerSlide,omitempty"`
	DisableBackground  bool          `yaml:"disableBackground,omitempty"` // Turns off the particle header
	MobileBreakpoint   int           `yaml:"mobileBreakpoint,omitempty"`  // Columns below which the hamburger menu is used
	MarkdownStyle      string        `yaml:"markdownStyle,omitempty"`     // glamour standard style: dark, light, notty
	DarkMode           *bool         `yaml:"darkMode,omitempty"`
}

// Content is everything shown inside the panes.
type Content struct {
	About     string         `yaml:"about,omitempty"` // Markdown
	Stats     []Stat         `yaml:"stats,omitempty"`
	TechStack []string       `yaml:"techStack,omitempty"`
	CV        []CVSection    `yaml:"cv,omitempty"`
	Projects  []Project      `yaml:"projects,omitempty"`
	Skills    []SkillGroup   `yaml:"skills,omitempty"`
	Services  []Service      `yaml:"services,omitempty"`
	Contact   ContactContent `yaml:"contact,omitempty"`
}

// Stat is a headline number on the about pane, e.g. "40+" projects.
// Value keeps its suffix ("+" or "%"); the counter animation preserves it.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// CVSection groups entries under a heading such as "Experience".
type CVSection struct {
	Title   string    `yaml:"title"`
	Entries []CVEntry `yaml:"entries"`
}

// CVEntry is one position, degree or certification.
type CVEntry struct {
	Title   string `yaml:"title"`
	Org     string `yaml:"org,omitempty"`
	Period  string `yaml:"period,omitempty"`
	Summary string `yaml:"summary,omitempty"`
}

// Project is one card on the projects pane.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags,omitempty"`
	URL         string   `yaml:"url,omitempty"`
}

// SkillGroup is a titled set of skill bars.
type SkillGroup struct {
	Name   string  `yaml:"name"`
	Skills []Skill `yaml:"skills"`
}

// Skill is one bar; Level is a percentage.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Service is one item of the services carousel.
type Service struct {
	Icon        string `yaml:"icon,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ContactContent holds the copy around the contact form.
type ContactContent struct {
	Intro string `yaml:"intro,omitempty"`
}

// IsDark reports the configured background, defaulting to dark.
func (u UISettings) IsDark() bool {
	if u.DarkMode == nil {
		return true
	}
	return *u.DarkMode
}
