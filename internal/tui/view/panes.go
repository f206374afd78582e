package view

import (
	"fmt"
	"strings"

	"folio/internal/contact"
	"folio/internal/tabs"
	"folio/internal/tui/components"
	"folio/internal/tui/design"
	"folio/internal/tui/model"
	"folio/internal/tui/utils"
	"folio/internal/widgets"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// paneContent is one pane split into a fixed top part and a scrollable body.
type paneContent struct {
	Sticky string
	Body   string
}

// renderPane renders one pane at width. It never mutates navigation state.
func renderPane(m *model.Model, id tabs.PaneID, width int) paneContent {
	switch id {
	case tabs.Home:
		return paneContent{Body: renderHome(m, width)}
	case tabs.About:
		return paneContent{Sticky: paneTitle(id), Body: renderAbout(m, width)}
	case tabs.CV:
		return renderCV(m, width)
	case tabs.Projects:
		return paneContent{Sticky: paneTitle(id), Body: renderProjects(m, width)}
	case tabs.Skills:
		return paneContent{Sticky: paneTitle(id), Body: renderSkills(m, width)}
	case tabs.Services:
		return paneContent{Sticky: paneTitle(id), Body: renderServices(m, width)}
	case tabs.Contact:
		return paneContent{Sticky: paneTitle(id), Body: renderContact(m, width)}
	}
	return paneContent{Body: design.DimStyle.Render("Nothing here.")}
}

func paneTitle(id tabs.PaneID) string {
	return design.TitleStyle.Render(id.Title())
}

// flow packs blocks left to right, starting a new row when width runs out.
func flow(blocks []string, width, gap int) string {
	var rows []string
	var row []string
	used := 0
	spacer := strings.Repeat(" ", gap)
	for _, b := range blocks {
		w := lipgloss.Width(b)
		if len(row) > 0 && used+gap+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		if len(row) > 0 {
			row = append(row, spacer)
			used += gap
		}
		row = append(row, b)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func renderHome(m *model.Model, width int) string {
	owner := m.Config.Owner
	title := m.Typewriter.Text()
	if m.Typewriter.Typing() {
		title += "▌"
	}

	lines := []string{
		"",
		design.TitleStyle.Render(owner.Name),
		design.GlowStyle.Render(title),
	}
	if owner.Tagline != "" {
		lines = append(lines, "", design.TextStyle.Render(utils.Wrap(owner.Tagline, width)))
	}
	if owner.Location != "" {
		lines = append(lines, design.DimStyle.Render("⌖ "+owner.Location))
	}
	if len(owner.Links) > 0 {
		lines = append(lines, "")
		for _, l := range owner.Links {
			lines = append(lines, design.TextSecondaryStyle.Render(l.Label+": ")+design.TagStyle.Render(l.URL))
		}
	}
	lines = append(lines, "", design.DimStyle.Render(fmt.Sprintf("Press %d or click %s to get in touch.", tabs.Contact.Index()+1, tabs.Contact.Title())))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAbout(m *model.Model, width int) string {
	content := m.Config.Content
	var parts []string
	if content.About != "" {
		parts = append(parts, renderMarkdown(m, content.About, width))
	}

	if len(content.Stats) > 0 {
		texts := m.Counters.Texts()
		var cards []string
		for i, st := range content.Stats {
			card := components.NewPanel("").
				WithContent(design.StatNumberStyle.Render(texts[i]) + "\n" + design.DimStyle.Render(st.Label)).
				WithDimensions(design.MinPanelWidth, 0).
				Render()
			cards = append(cards, card)
		}
		parts = append(parts, "", flow(cards, width, 1))
	}

	if len(content.TechStack) > 0 {
		var items []string
		for i, tech := range content.TechStack {
			style := design.TechItemStyle
			if m.Hover == TechZoneID(i) {
				style = design.TechItemHoverStyle
			}
			items = append(items, zone.Mark(TechZoneID(i), style.Render(tech)))
		}
		parts = append(parts, "", design.SubtitleStyle.Render("Tech stack"), flow(items, width, 1))
	}
	return strings.Join(parts, "\n")
}

// cvLayout renders the CV body and records where each section starts.
func cvLayout(m *model.Model, width int) (string, []widgets.Section) {
	var lines []string
	var sections []widgets.Section
	for i, sec := range m.Config.Content.CV {
		if i > 0 {
			lines = append(lines, "")
		}
		sections = append(sections, widgets.Section{ID: sec.Title, Offset: len(lines)})
		lines = append(lines, design.SubtitleStyle.Render(sec.Title))
		for _, e := range sec.Entries {
			head := design.TextStyle.Bold(true).Render(e.Title)
			if e.Org != "" {
				head += design.TextSecondaryStyle.Render(" · " + e.Org)
			}
			lines = append(lines, "", head)
			if e.Period != "" {
				lines = append(lines, design.DimStyle.Render(e.Period))
			}
			if e.Summary != "" {
				lines = append(lines, strings.Split(utils.Wrap(e.Summary, width), "\n")...)
			}
		}
	}
	return strings.Join(lines, "\n"), sections
}

func renderCV(m *model.Model, width int) paneContent {
	body, sections := cvLayout(m, width)
	active := widgets.NewScrollSpy(sections).Active(m.Scroll)

	var index []string
	for _, sec := range sections {
		style := design.NavItemStyle
		if sec.ID == active {
			style = design.NavItemActiveStyle
		}
		index = append(index, style.Render(sec.ID))
	}
	sticky := paneTitle(tabs.CV)
	if len(index) > 0 {
		sticky += "\n" + flow(index, width, 0)
	}
	return paneContent{Sticky: sticky, Body: body}
}

func renderProjects(m *model.Model, width int) string {
	projects := m.Config.Content.Projects
	if len(projects) == 0 {
		return design.DimStyle.Render("No projects yet.")
	}

	cardWidth := width
	if width >= 2*design.MinPanelWidth+10 {
		cardWidth = (width - 1) / 2
	}
	start, end := m.Pager.Bounds()
	var cards []string
	for _, p := range projects[start:end] {
		inner := cardWidth - design.CardStyle.GetHorizontalFrameSize()
		body := []string{utils.Wrap(p.Description, inner)}
		if len(p.Tags) > 0 {
			var tags []string
			for _, t := range p.Tags {
				tags = append(tags, "#"+t)
			}
			body = append(body, design.TagStyle.Render(utils.Wrap(strings.Join(tags, " "), inner)))
		}
		if p.URL != "" {
			body = append(body, design.DimStyle.Render(utils.TruncateString(p.URL, inner)))
		}
		cards = append(cards, components.NewPanel(p.Name).
			WithContent(strings.Join(body, "\n")).
			WithDimensions(cardWidth, 0).
			Render())
	}

	var buttons []string
	for _, b := range m.Pager.Buttons() {
		style := design.ButtonStyle
		if b.Active {
			style = design.ButtonActiveStyle
		}
		buttons = append(buttons, zone.Mark(PageZoneID(b.Index), style.Render(fmt.Sprintf("%d", b.Label))))
	}
	pager := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	status := design.DimStyle.Render(fmt.Sprintf("  page %d of %d  (, .)", m.Pager.Page()+1, m.Pager.Pages()))

	return flow(cards, width, 1) + "\n" + lipgloss.JoinHorizontal(lipgloss.Center, pager, status)
}

const skillNameWidth = 18

func renderSkills(m *model.Model, width int) string {
	barWidth := width - skillNameWidth - 6
	if barWidth < 10 {
		barWidth = 10
	}
	var lines []string
	i := 0
	for g, group := range m.Config.Content.Skills {
		if g > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, design.SubtitleStyle.Render(group.Name))
		for _, s := range group.Skills {
			pct := int(m.SkillBars.Percent(i)*100 + 0.5)
			lines = append(lines, utils.PadRight(utils.TruncateString(s.Name, skillNameWidth-1), skillNameWidth)+
				m.SkillBars.ViewBar(i, barWidth)+
				design.DimStyle.Render(fmt.Sprintf(" %3d%%", pct)))
			i++
		}
	}
	return strings.Join(lines, "\n")
}

func renderServices(m *model.Model, width int) string {
	services := m.Config.Content.Services
	if len(services) == 0 {
		return design.DimStyle.Render("No services listed.")
	}
	perSlide := m.Config.UI.ServicesPerSlide
	start, end := m.Carousel.Bounds(len(services), perSlide)

	cardWidth := width
	if n := end - start; n > 1 && width/n >= design.MinPanelWidth+2 {
		cardWidth = (width - (n - 1)) / n
	}
	var cards []string
	for i := start; i < end; i++ {
		s := services[i]
		inner := cardWidth - design.CardStyle.GetHorizontalFrameSize()
		card := components.NewPanel(s.Title).
			WithIcon(s.Icon).
			WithContent(utils.Wrap(s.Description, inner)).
			WithDimensions(cardWidth, 0).
			SetFocused(m.Hover == ServiceZoneID(i)).
			Render()
		cards = append(cards, zone.Mark(ServiceZoneID(i), card))
	}

	controls := []string{zone.Mark(CarouselPrevZoneID, design.ButtonStyle.Render("‹"))}
	for i := 0; i < m.Carousel.Slides(); i++ {
		dot := "○"
		if i == m.Carousel.Slide() {
			dot = "●"
		}
		controls = append(controls, zone.Mark(SlideZoneID(i), design.NavItemStyle.Render(dot)))
	}
	controls = append(controls, zone.Mark(CarouselNextZoneID, design.ButtonStyle.Render("›")))
	nav := lipgloss.JoinHorizontal(lipgloss.Center, controls...)
	if m.Carousel.Running() {
		nav = lipgloss.JoinHorizontal(lipgloss.Center, nav, design.DimStyle.Render("  autoplay"))
	}
	return flow(cards, width, 1) + "\n" + design.CenterHorizontal(width, nav)
}

var fieldLabels = map[contact.Field]string{
	contact.FieldName:    "Name",
	contact.FieldEmail:   "Email",
	contact.FieldSubject: "Subject",
	contact.FieldMessage: "Message",
}

func renderContact(m *model.Model, width int) string {
	var parts []string
	if intro := m.Config.Content.Contact.Intro; intro != "" {
		parts = append(parts, renderMarkdown(m, intro, width))
	}
	if email := m.Config.Owner.Email; email != "" {
		parts = append(parts, design.TextSecondaryStyle.Render("✉ ")+design.TagStyle.Render(email), "")
	}

	formWidth := width
	if formWidth > 72 {
		formWidth = 72
	}
	inner := formWidth - design.InputStyle.GetHorizontalFrameSize()

	for _, f := range contact.Fields {
		focused := m.ContactEditing && m.ContactFocus == f
		style := design.InputStyle
		if focused {
			style = design.InputFocusedStyle
		}
		var field string
		if f == contact.FieldMessage {
			m.ContactBody.SetWidth(inner)
			field = m.ContactBody.View()
		} else {
			m.ContactInputs[f].Width = inner - 1
			field = m.ContactInputs[f].View()
		}
		label := design.TextSecondaryStyle.Render(fieldLabels[f])
		box := style.Width(formWidth - style.GetHorizontalBorderSize()).Render(field)
		parts = append(parts, label, zone.Mark(FieldZoneID(int(f)), box))
	}

	label := "Send Message"
	style := design.ButtonStyle
	if m.ContactSending {
		label = "Sending..."
	} else if m.Hover == SubmitZoneID {
		style = design.ButtonActiveStyle
	}
	parts = append(parts, zone.Mark(SubmitZoneID, style.Render(label)))

	hint := "enter to fill in the form"
	if m.ContactEditing {
		hint = "tab next field · ctrl+s send · esc done"
	}
	parts = append(parts, design.DimStyle.Render(hint))
	return strings.Join(parts, "\n")
}
