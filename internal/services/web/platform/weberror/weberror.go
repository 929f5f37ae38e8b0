// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	webi18n "github.com/louisbranch/welcomepath/internal/services/web/i18n"
	module "github.com/louisbranch/welcomepath/internal/services/web/module"
	apperrors "github.com/louisbranch/welcomepath/internal/services/web/platform/errors"
	"github.com/louisbranch/welcomepath/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/welcomepath/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized app-shell error response for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, shell module.Shell) {
	writeAppError(w, r, statusCode, "", shell)
}

func writeAppError(w http.ResponseWriter, r *http.Request, statusCode int, message string, shell module.Shell) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc := shell.Loc()
	err := pagerender.WriteModulePage(w, r, shell, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, message, loc),
	})
	if err != nil {
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
// Errors carrying a catalog key show that copy in the error panel.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, shell module.Shell) {
	if w == nil {
		return
	}
	message := ""
	if apperrors.LocalizationKey(err) != "" {
		message = PublicMessage(shell.Loc(), err)
	}
	writeAppError(w, r, apperrors.HTTPStatus(err), message, shell)
}
