package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DashboardView is the onboarding page view model.
type DashboardView struct {
	Header       HeaderView
	FirstName    string
	Progress     int
	JourneyTasks []ChecklistRow
	MainTask     string
	SubTasks     []ChecklistRow
	Team         []TeamMemberView
}

// Card ids rendered by OnboardingDashboard.
const (
	JourneyCardID    = "onboarding-journey"
	FirstTasksCardID = "first-tasks"
	TeamCardID       = "meet-your-team"
)

// OnboardingDashboard renders the welcome banner and the three dashboard cards.
func OnboardingDashboard(view DashboardView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.render(ctx, WelcomeMessage(view.FirstName, loc))
		m.raw(`<section class="card-grid">`)
		m.render(ctx, Card(JourneyCardID, T(loc, "dashboard.journey.title"), journeyBody(view, loc)))
		m.render(ctx, Card(FirstTasksCardID, T(loc, "dashboard.first_tasks.title"), firstTasksBody(view)))
		m.render(ctx, Card(TeamCardID, T(loc, "dashboard.team.title"), teamGrid(view.Team)))
		m.raw(`</section>`)
		return m.err
	})
}

func journeyBody(view DashboardView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="gauge-wrap">`)
		m.render(ctx, CircularProgressBar(view.Progress, loc))
		m.raw(`</div>`)
		m.render(ctx, Checklist(view.JourneyTasks))
		return m.err
	})
}

func firstTasksBody(view DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="stack">`)
		m.render(ctx, Button(view.MainTask))
		m.render(ctx, Checklist(view.SubTasks))
		m.raw(`</div>`)
		return m.err
	})
}

func teamGrid(team []TeamMemberView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="team-grid" data-team-grid>`)
		for _, member := range team {
			m.render(ctx, TeamMemberAvatar(member))
		}
		m.raw(`</div>`)
		return m.err
	})
}
