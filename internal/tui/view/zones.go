package view

import (
	"strconv"
	"strings"

	"folio/internal/widgets"
)

// Mouse zone identifiers that are not navigation controls. Navigation
// controls use tabs.ZoneID and cubes use background.CubeZoneID.
const (
	MenuZoneID         = "nav:menu"
	CarouselPrevZoneID = "carousel:prev"
	CarouselNextZoneID = "carousel:next"
	SubmitZoneID       = "contact:submit"

	TechZonePrefix    = "tech:"
	ServiceZonePrefix = "service:"
	FieldZonePrefix   = "field:"
)

func TechZoneID(i int) string    { return TechZonePrefix + strconv.Itoa(i) }
func ServiceZoneID(i int) string { return ServiceZonePrefix + strconv.Itoa(i) }
func FieldZoneID(i int) string   { return FieldZonePrefix + strconv.Itoa(i) }
func PageZoneID(i int) string    { return widgets.PageZonePrefix + strconv.Itoa(i) }
func SlideZoneID(i int) string   { return widgets.CarouselZonePrefix + strconv.Itoa(i) }

// ParseIndexZone extracts N from "<prefix>N".
func ParseIndexZone(prefix, id string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	i, err := strconv.Atoi(id[len(prefix):])
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
