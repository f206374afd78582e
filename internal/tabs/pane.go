package tabs

import "strings"

// PaneID names one pane of the tabbed view.
type PaneID string

const (
	Home     PaneID = "home"
	About    PaneID = "about"
	CV       PaneID = "cv"
	Projects PaneID = "projects"
	Skills   PaneID = "skills"
	Services PaneID = "services"
	Contact  PaneID = "contact"
)

var paneOrder = []PaneID{Home, About, CV, Projects, Skills, Services, Contact}

var paneTitles = map[PaneID]string{
	Home:     "Home",
	About:    "About",
	CV:       "CV",
	Projects: "Projects",
	Skills:   "Skills",
	Services: "Services",
	Contact:  "Contact",
}

// All returns every pane identifier in navigation order.
func All() []PaneID {
	out := make([]PaneID, len(paneOrder))
	copy(out, paneOrder)
	return out
}

// Valid reports whether id is one of the enumerated panes.
func (id PaneID) Valid() bool {
	_, ok := paneTitles[id]
	return ok
}

// Title is the label shown on navigation controls.
func (id PaneID) Title() string {
	if t, ok := paneTitles[id]; ok {
		return t
	}
	return string(id)
}

// Index is the position of id in navigation order, or -1.
func (id PaneID) Index() int {
	for i, p := range paneOrder {
		if p == id {
			return i
		}
	}
	return -1
}

// ParsePaneID accepts a bare identifier or a fragment ("#cv").
func ParsePaneID(s string) (PaneID, bool) {
	id := PaneID(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if !id.Valid() {
		return "", false
	}
	return id, true
}

// FromFragment resolves a fragment to a pane, falling back to Home.
func FromFragment(hash string) PaneID {
	if id, ok := ParsePaneID(hash); ok {
		return id
	}
	return Home
}

// Fragment is the addressable form of id.
func Fragment(id PaneID) string {
	return "#" + string(id)
}

// Pane is the visual state of one content container.
type Pane struct {
	ID          PaneID
	Visible     bool
	Active      bool
	Interactive bool
	Transform   Transform

	from Transform
	to   Transform
}

func (p *Pane) show() {
	p.Visible = true
	p.Active = true
	p.Interactive = true
	p.Transform = Identity
	p.from, p.to = Identity, Identity
}

func (p *Pane) hide() {
	p.Visible = false
	p.Active = false
	p.Interactive = false
	p.Transform = Identity
	p.from, p.to = Identity, Identity
}
