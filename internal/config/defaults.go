package config

import "time"

const (
	DefaultTransitionDuration = 600 * time.Millisecond
	DefaultCarouselInterval   = 5 * time.Second
	DefaultProjectsPerPage    = 6
	DefaultServicesPerSlide   = 3
	DefaultMobileBreakpoint   = 80
	DefaultMarkdownStyle      = "dark"
)

// GetDefaultConfig returns the compiled-in sample portfolio.
func GetDefaultConfig() FolioConfig {
	return FolioConfig{
		Owner: Owner{
			Name:     "Sam Rivera",
			Title:    "Backend & Platform Engineer",
			Tagline:  "I build quiet, boring, reliable systems.",
			Email:    "hello@example.dev",
			Location: "Remote",
			Links: []Link{
				{Label: "GitHub", URL: "https://github.com/example"},
				{Label: "Blog", URL: "https://example.dev/blog"},
			},
		},
		UI: UISettings{
			TransitionDuration: DefaultTransitionDuration,
			CarouselInterval:   DefaultCarouselInterval,
			ProjectsPerPage:    DefaultProjectsPerPage,
			ServicesPerSlide:   DefaultServicesPerSlide,
			MobileBreakpoint:   DefaultMobileBreakpoint,
			MarkdownStyle:      DefaultMarkdownStyle,
		},
		Content: Content{
			About: `## About me

I have spent the last decade on **backend services** and the platforms
underneath them: queues, caches, schedulers and the dashboards that tell you
when they are unhappy.

I like small binaries, clear ownership and runbooks that fit on one screen.`,
			Stats: []Stat{
				{Label: "Years shipping", Value: "10+"},
				{Label: "Projects", Value: "40+"},
				{Label: "Uptime kept", Value: "99%"},
			},
			TechStack: []string{"Go", "PostgreSQL", "Kafka", "Kubernetes", "Terraform", "gRPC"},
			CV: []CVSection{
				{
					Title: "Experience",
					Entries: []CVEntry{
						{Title: "Staff Engineer", Org: "Northwind Logistics", Period: "2021 - now", Summary: "Led the move from cron jobs to an event-driven dispatch platform."},
						{Title: "Senior Engineer", Org: "Acme Payments", Period: "2017 - 2021", Summary: "Owned the ledger service and its reconciliation pipeline."},
						{Title: "Engineer", Org: "Initech", Period: "2014 - 2017", Summary: "Built internal tooling and the first on-call rotation."},
					},
				},
				{
					Title: "Education",
					Entries: []CVEntry{
						{Title: "BSc Computer Science", Org: "State University", Period: "2010 - 2014"},
					},
				},
				{
					Title: "Certifications",
					Entries: []CVEntry{
						{Title: "Certified Kubernetes Administrator", Period: "2020"},
					},
				},
			},
			Projects: []Project{
				{Name: "tracer", Description: "Distributed tracing collector with tail sampling.", Tags: []string{"go", "otel"}},
				{Name: "ledgerd", Description: "Double-entry ledger service with idempotent writes.", Tags: []string{"go", "postgres"}},
				{Name: "kq", Description: "Terminal client for inspecting Kafka topics.", Tags: []string{"go", "kafka", "tui"}},
				{Name: "shipit", Description: "Release train bot for chat.", Tags: []string{"go", "slack"}},
				{Name: "tfdrift", Description: "Nightly Terraform drift reports.", Tags: []string{"terraform"}},
				{Name: "pgwatch-lite", Description: "Minimal Postgres health exporter.", Tags: []string{"go", "prometheus"}},
				{Name: "cronless", Description: "Scheduler that replaces crontabs with a queue.", Tags: []string{"go", "redis"}},
				{Name: "folio", Description: "This portfolio, in your terminal.", Tags: []string{"go", "bubbletea"}},
			},
			Skills: []SkillGroup{
				{Name: "Languages", Skills: []Skill{{Name: "Go", Level: 95}, {Name: "SQL", Level: 85}, {Name: "Python", Level: 70}}},
				{Name: "Platform", Skills: []Skill{{Name: "Kubernetes", Level: 85}, {Name: "Terraform", Level: 80}, {Name: "Observability", Level: 90}}},
			},
			Services: []Service{
				{Icon: "⚙", Title: "Backend services", Description: "APIs and workers that stay up."},
				{Icon: "☁", Title: "Cloud platforms", Description: "Clusters, pipelines and guard rails."},
				{Icon: "◎", Title: "Observability", Description: "Metrics, traces and alerts worth waking up for."},
				{Icon: "⇄", Title: "Migrations", Description: "Moving data and traffic without downtime."},
				{Icon: "✎", Title: "Reviews", Description: "Architecture and code reviews."},
				{Icon: "☕", Title: "Mentoring", Description: "Pairing and growth plans for engineers."},
			},
			Contact: ContactContent{
				Intro: "Have a project in mind? Send a note and your mail client will take it from there.",
			},
		},
	}
}
