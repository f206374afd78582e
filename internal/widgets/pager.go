package widgets

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
)

// PageZonePrefix prefixes the bubblezone IDs of page buttons.
const PageZonePrefix = "page:"

// PageButton is one numbered button under the project grid.
type PageButton struct {
	Index  int
	Label  int // 1-based
	Active bool
}

// Pager splits a list of items into pages.
type Pager struct {
	model paginator.Model
	items int
}

// PagerKeyMap avoids left/right, which switch tabs.
var PagerKeyMap = paginator.KeyMap{
	PrevPage: key.NewBinding(key.WithKeys("pgup", ","), key.WithHelp(",", "prev page")),
	NextPage: key.NewBinding(key.WithKeys("pgdown", "."), key.WithHelp(".", "next page")),
}

// NewPager creates a pager over items entries, perPage at a time.
func NewPager(perPage, items int) *Pager {
	if perPage < 1 {
		perPage = 1
	}
	m := paginator.New()
	m.Type = paginator.Dots
	m.PerPage = perPage
	m.KeyMap = PagerKeyMap
	m.SetTotalPages(items)
	if items == 0 {
		m.TotalPages = 1
	}
	return &Pager{model: m, items: items}
}

// Page is the zero-based current page.
func (p *Pager) Page() int { return p.model.Page }

// Pages is ceil(items/perPage), at least one.
func (p *Pager) Pages() int { return p.model.TotalPages }

// PerPage is the page size.
func (p *Pager) PerPage() int { return p.model.PerPage }

// SetPage selects page i. Out-of-range pages are ignored.
func (p *Pager) SetPage(i int) bool {
	if i < 0 || i >= p.model.TotalPages {
		return false
	}
	p.model.Page = i
	return true
}

func (p *Pager) Next() { p.model.NextPage() }
func (p *Pager) Prev() { p.model.PrevPage() }

// Bounds returns the half-open item range of the current page.
func (p *Pager) Bounds() (start, end int) {
	return p.model.GetSliceBounds(p.items)
}

// Buttons lists one button per page with exactly one active.
func (p *Pager) Buttons() []PageButton {
	out := make([]PageButton, p.model.TotalPages)
	for i := range out {
		out[i] = PageButton{Index: i, Label: i + 1, Active: i == p.model.Page}
	}
	return out
}

// Update forwards key presses to the paginator.
func (p *Pager) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return cmd
}

// View renders the paginator dots.
func (p *Pager) View() string { return p.model.View() }
