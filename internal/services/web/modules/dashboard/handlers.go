package dashboard

import (
	"net/http"

	module "github.com/louisbranch/welcomepath/internal/services/web/module"
	apperrors "github.com/louisbranch/welcomepath/internal/services/web/platform/errors"
	"github.com/louisbranch/welcomepath/internal/services/web/platform/httpx"
	"github.com/louisbranch/welcomepath/internal/services/web/platform/pagerender"
	"github.com/louisbranch/welcomepath/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/welcomepath/internal/services/web/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/welcomepath/internal/services/web/modules/dashboard"

type handlers struct {
	service service
	shell   module.Shell
}

func newHandlers(s service, shell module.Shell) handlers {
	return handlers{service: s, shell: shell}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(httpx.RequestContext(r), "dashboard.render",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()
	r = r.WithContext(ctx)

	view, err := h.service.loadDashboard(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load dashboard")
		h.writeError(w, r, err)
		return
	}
	span.SetAttributes(
		attribute.Int("onboarding.progress", view.Progress),
		attribute.Int("onboarding.journey_tasks", len(view.JourneyTasks)),
		attribute.Int("onboarding.sub_tasks", len(view.SubTasks)),
		attribute.Int("onboarding.team_members", len(view.Team)),
		attribute.Bool("htmx", httpx.IsHTMXRequest(r)),
	)

	loc := h.shell.Loc()
	if err := pagerender.WriteModulePage(w, r, h.shell, pagerender.ModulePage{
		Title:    webtemplates.T(loc, "dashboard.title"),
		Header:   &view.Header,
		Fragment: webtemplates.OnboardingDashboard(view, loc),
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render dashboard")
		h.writeError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperrors.EK(apperrors.KindNotFound, "web.error.message_not_found", "no dashboard route for "+r.URL.Path))
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.shell)
}
