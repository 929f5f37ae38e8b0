package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/welcomepath/internal/platform/icons"
)

// ChecklistRow is one rendered task line.
type ChecklistRow struct {
	Text      string
	Completed bool
}

// TeamMemberView is one roster avatar.
type TeamMemberView struct {
	Name     string
	ImageURL string
}

// Icon renders a catalog glyph. Unknown ids render nothing.
func Icon(id icons.ID) templ.Component {
	svg, ok := icons.Markup(id)
	if !ok {
		return templ.NopComponent
	}
	return templ.Raw(svg)
}

// Card renders a titled content container. id may be empty.
func Card(id, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="card"`)
		if id != "" {
			m.attr("id", id)
		}
		m.raw(`><h2 class="card-title">`)
		m.text(title)
		m.raw(`</h2><div class="card-body">`)
		m.render(ctx, body)
		m.raw(`</div></div>`)
		return m.err
	})
}

// Button renders a full-width action button. Clicking it does nothing.
func Button(label string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<button type="button" class="btn-primary">`)
		m.text(label)
		m.raw(`</button>`)
		return m.err
	})
}

// IconButton renders a glyph-only button labelled for assistive tech.
func IconButton(id icons.ID, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<button type="button" class="icon-button"`)
		m.attr("aria-label", label)
		m.raw(`>`)
		m.render(ctx, Icon(id))
		m.raw(`</button>`)
		return m.err
	})
}

// ChecklistItem renders one task with the completed or incomplete marker.
func ChecklistItem(row ChecklistRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		icon, textClass := icons.CheckIncomplete, "checklist-text checklist-text-todo"
		if row.Completed {
			icon, textClass = icons.CheckComplete, "checklist-text checklist-text-done"
		}
		m := newMarkup(w)
		m.raw(`<li class="checklist-item"`)
		m.attr("data-completed", strconv.FormatBool(row.Completed))
		m.raw(`>`)
		m.render(ctx, Icon(icon))
		m.raw(`<span`)
		m.attr("class", textClass)
		m.raw(`>`)
		m.text(row.Text)
		m.raw(`</span></li>`)
		return m.err
	})
}

// Checklist renders rows in order.
func Checklist(rows []ChecklistRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<ul class="checklist">`)
		for _, row := range rows {
			m.render(ctx, ChecklistItem(row))
		}
		m.raw(`</ul>`)
		return m.err
	})
}

// CircularProgressBar renders a ring gauge with the percentage label centered.
func CircularProgressBar(percentage int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		gauge := NewRingGauge(percentage)
		r := formatSVGNumber(gauge.Radius)
		m := newMarkup(w)
		m.raw(`<div class="gauge" data-gauge>`)
		m.raw(`<svg class="gauge-svg" viewBox="0 0 100 100">`)
		m.raw(`<circle class="gauge-track" stroke-width="10" stroke="currentColor" fill="transparent"`)
		m.attr("r", r)
		m.raw(` cx="50" cy="50"/>`)
		m.raw(`<circle class="gauge-arc" stroke-width="10"`)
		m.attr("stroke-dasharray", formatSVGNumber(gauge.Circumference))
		m.attr("stroke-dashoffset", formatSVGNumber(gauge.DashOffset))
		m.raw(` stroke-linecap="round" stroke="currentColor" fill="transparent"`)
		m.attr("r", r)
		m.raw(` cx="50" cy="50" transform="rotate(-90 50 50)"/>`)
		m.raw(`</svg>`)
		m.raw(`<div class="gauge-label-wrap"><span class="gauge-label" data-gauge-label>`)
		m.text(T(loc, "dashboard.journey.percent", strconv.Itoa(percentage)))
		m.raw(`</span></div></div>`)
		return m.err
	})
}

// TeamMemberAvatar renders a roster photo with the member's name.
func TeamMemberAvatar(member TeamMemberView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="team-member" data-team-member><img class="team-avatar"`)
		m.attr("src", member.ImageURL)
		m.attr("alt", member.Name)
		m.raw(`><p class="team-name">`)
		m.text(member.Name)
		m.raw(`</p></div>`)
		return m.err
	})
}

// UserProfile renders the header badge with initials and full name.
func UserProfile(initials, name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="user-profile"><div class="user-avatar"><span class="user-initials">`)
		m.text(initials)
		m.raw(`</span></div><span class="user-name">`)
		m.text(name)
		m.raw(`</span></div>`)
		return m.err
	})
}
