package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/welcomepath/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey    = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey   = "web.error.page_title_server_error"
	appErrorPageTitleUnavailableKey = "web.error.page_title_unavailable"
	appErrorMessageNotFoundKey      = "web.error.message_not_found"
	appErrorMessageServerErrKey     = "web.error.message_server_error"
	appErrorMessageUnavailableKey   = "web.error.message_unavailable"
	appErrorBackToDashboardTextKey  = "web.error.action_back_to_dashboard"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	switch normalizeAppErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, appErrorPageTitleNotFoundKey)
	case http.StatusServiceUnavailable:
		return T(loc, appErrorPageTitleUnavailableKey)
	default:
		return T(loc, appErrorPageTitleServerErrKey)
	}
}

func appErrorMessage(statusCode int, loc Localizer) string {
	switch normalizeAppErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, appErrorMessageNotFoundKey)
	case http.StatusServiceUnavailable:
		return T(loc, appErrorMessageUnavailableKey)
	default:
		return T(loc, appErrorMessageServerErrKey)
	}
}

func normalizeAppErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}

// AppErrorState renders the error panel for 404 and 5xx responses.
// An empty message falls back to the default copy for the status.
func AppErrorState(statusCode int, message string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		status := normalizeAppErrorStatus(statusCode)
		text := message
		if text == "" {
			text = appErrorMessage(status, loc)
		}
		m := newMarkup(w)
		m.raw(`<section class="error-state"`)
		m.attr("data-status", strconv.Itoa(status))
		m.raw(`><h1>`)
		m.text(AppErrorPageTitle(status, loc))
		m.raw(`</h1><p>`)
		m.text(text)
		m.raw(`</p><a`)
		m.attr("href", routepath.Root)
		m.raw(`>`)
		m.text(T(loc, appErrorBackToDashboardTextKey))
		m.raw(`</a></section>`)
		return m.err
	})
}
