package tabs

import (
	"fmt"
	"strings"
)

// Platform tags which navigation surface a control belongs to.
type Platform int

const (
	Desktop Platform = iota
	Mobile
)

func (p Platform) String() string {
	if p == Mobile {
		return "mobile"
	}
	return "desktop"
}

const zonePrefix = "nav"

// NavigationControl is a clickable control that targets one pane.
type NavigationControl struct {
	Target   PaneID
	Platform Platform
	Active   bool
}

// ZoneID is the mouse hit-testing identifier, "nav:<platform>:<pane>".
func (c NavigationControl) ZoneID() string {
	return ZoneID(c.Platform, c.Target)
}

// ZoneID builds the identifier for a control without constructing one.
func ZoneID(p Platform, id PaneID) string {
	return fmt.Sprintf("%s:%s:%s", zonePrefix, p, id)
}

// ParseZoneID is the inverse of ZoneID. Unknown panes are reported as
// not-ok so that a stale mark never reaches SwitchTab.
func ParseZoneID(zoneID string) (NavigationControl, bool) {
	parts := strings.Split(zoneID, ":")
	if len(parts) != 3 || parts[0] != zonePrefix {
		return NavigationControl{}, false
	}
	var p Platform
	switch parts[1] {
	case Desktop.String():
		p = Desktop
	case Mobile.String():
		p = Mobile
	default:
		return NavigationControl{}, false
	}
	id, ok := ParsePaneID(parts[2])
	if !ok {
		return NavigationControl{}, false
	}
	return NavigationControl{Target: id, Platform: p}, true
}

// DefaultControls returns one desktop and one mobile control per pane.
func DefaultControls(panes []PaneID) []NavigationControl {
	out := make([]NavigationControl, 0, 2*len(panes))
	for _, p := range []Platform{Desktop, Mobile} {
		for _, id := range panes {
			out = append(out, NavigationControl{Target: id, Platform: p})
		}
	}
	return out
}
