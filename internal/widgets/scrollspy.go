package widgets

const (
	ScrollSpyOffset   = 3
	ScrolledThreshold = 4
)

// Section is a heading inside a scrollable pane, at line Offset.
type Section struct {
	ID     string
	Offset int
}

// ScrollSpy picks the section under the top of a viewport.
type ScrollSpy struct {
	Sections []Section // ascending by Offset
	Offset   int
}

// NewScrollSpy uses the default look-ahead offset.
func NewScrollSpy(sections []Section) ScrollSpy {
	return ScrollSpy{Sections: sections, Offset: ScrollSpyOffset}
}

// Active returns the last section starting at or above scroll+Offset, or ""
// when the viewport is above every section.
func (s ScrollSpy) Active(scroll int) string {
	active := ""
	for _, sec := range s.Sections {
		if sec.Offset <= scroll+s.Offset {
			active = sec.ID
		}
	}
	return active
}

// Scrolled reports whether the header should switch to its compact style.
func Scrolled(scroll int) bool { return scroll > ScrolledThreshold }
