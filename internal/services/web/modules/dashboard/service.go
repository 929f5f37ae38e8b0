package dashboard

import (
	"context"

	"github.com/louisbranch/welcomepath/internal/onboarding"
	apperrors "github.com/louisbranch/welcomepath/internal/services/web/platform/errors"
	webtemplates "github.com/louisbranch/welcomepath/internal/services/web/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SnapshotSource loads the onboarding data set rendered by the dashboard.
type SnapshotSource interface {
	LoadSnapshot(context.Context) (onboarding.Snapshot, error)
}

type staticSource struct {
	snapshot onboarding.Snapshot
}

func (s staticSource) LoadSnapshot(context.Context) (onboarding.Snapshot, error) {
	return s.snapshot.Clone(), nil
}

type service struct {
	source SnapshotSource
}

func newService(source SnapshotSource) service {
	if source == nil {
		source = staticSource{snapshot: onboarding.MockSnapshot()}
	}
	return service{source: source}
}

func (s service) loadDashboard(ctx context.Context) (webtemplates.DashboardView, error) {
	snapshot, err := s.source.LoadSnapshot(ctx)
	if err != nil {
		return webtemplates.DashboardView{}, apperrors.WrapKey(apperrors.KindUnavailable, "web.error.message_unavailable", err)
	}
	if err := snapshot.Validate(); err != nil {
		return webtemplates.DashboardView{}, apperrors.WrapKey(apperrors.KindUnknown, "web.error.message_server_error", err)
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("onboarding.journey_completed", snapshot.Journey.CompletedCount()),
	)
	return mapDashboardView(snapshot), nil
}

func mapDashboardView(snapshot onboarding.Snapshot) webtemplates.DashboardView {
	team := make([]webtemplates.TeamMemberView, 0, len(snapshot.Team))
	for _, member := range snapshot.Team {
		team = append(team, webtemplates.TeamMemberView{Name: member.Name, ImageURL: member.ImageURL})
	}
	return webtemplates.DashboardView{
		Header: webtemplates.HeaderView{
			UserName:     snapshot.User.Name,
			UserInitials: snapshot.User.Initials,
		},
		FirstName:    snapshot.User.FirstName(),
		Progress:     snapshot.Journey.Progress,
		JourneyTasks: mapChecklistRows(snapshot.Journey.Tasks),
		MainTask:     snapshot.FirstTasks.MainTask,
		SubTasks:     mapChecklistRows(snapshot.FirstTasks.SubTasks),
		Team:         team,
	}
}

func mapChecklistRows(tasks []onboarding.Task) []webtemplates.ChecklistRow {
	rows := make([]webtemplates.ChecklistRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, webtemplates.ChecklistRow{Text: task.Text, Completed: task.Completed})
	}
	return rows
}
