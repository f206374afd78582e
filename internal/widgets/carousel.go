package widgets

import (
	"time"

	"folio/internal/tabs"

	tea "github.com/charmbracelet/bubbletea"
)

// CarouselZonePrefix prefixes the bubblezone IDs of carousel dots.
const CarouselZonePrefix = "slide:"

// CarouselTickMsg advances the carousel when Gen is current.
type CarouselTickMsg struct{ Gen int }

// Carousel cycles through slides of services, wrapping at both ends.
type Carousel struct {
	clock    tabs.Clock
	interval time.Duration
	slide    int
	slides   int
	gen      int
	running  bool
}

// NewCarousel groups items into slides of perSlide each.
func NewCarousel(clock tabs.Clock, items, perSlide int, interval time.Duration) *Carousel {
	if perSlide < 1 {
		perSlide = 1
	}
	slides := (items + perSlide - 1) / perSlide
	if slides < 1 {
		slides = 1
	}
	return &Carousel{clock: clock, interval: interval, slides: slides}
}

// Slide is the zero-based current slide.
func (c *Carousel) Slide() int { return c.slide }

// Slides is the number of slides.
func (c *Carousel) Slides() int { return c.slides }

// Running reports whether autoplay is active.
func (c *Carousel) Running() bool { return c.running }

func (c *Carousel) Next() { c.slide = (c.slide + 1) % c.slides }

func (c *Carousel) Prev() { c.slide = (c.slide - 1 + c.slides) % c.slides }

// Show jumps to slide i if it exists.
func (c *Carousel) Show(i int) bool {
	if i < 0 || i >= c.slides {
		return false
	}
	c.slide = i
	return true
}

// Bounds returns the half-open item range of the current slide.
func (c *Carousel) Bounds(items, perSlide int) (start, end int) {
	start = c.slide * perSlide
	end = start + perSlide
	if start > items {
		start = items
	}
	if end > items {
		end = items
	}
	return start, end
}

// Start begins autoplay. Calling it again restarts the interval.
func (c *Carousel) Start() tea.Cmd {
	if c.interval <= 0 {
		return nil
	}
	c.gen++
	c.running = true
	return c.clock.After(c.interval, CarouselTickMsg{Gen: c.gen})
}

// Stop ends autoplay; pending ticks become inert.
func (c *Carousel) Stop() {
	c.gen++
	c.running = false
}

// Update handles autoplay ticks.
func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(CarouselTickMsg)
	if !ok || !c.running || tick.Gen != c.gen {
		return nil
	}
	c.Next()
	return c.clock.After(c.interval, CarouselTickMsg{Gen: c.gen})
}
