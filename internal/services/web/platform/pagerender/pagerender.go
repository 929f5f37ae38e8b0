// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/welcomepath/internal/services/web/module"
	"github.com/louisbranch/welcomepath/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/welcomepath/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	// Header overrides the shell header when the page loaded its own user.
	Header   *webtemplates.HeaderView
	Fragment templ.Component
}

// WriteModulePage renders page into a buffer and writes it only when rendering succeeds.
func WriteModulePage(w http.ResponseWriter, r *http.Request, shell module.Shell, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	var root templ.Component
	if httpx.IsHTMXRequest(r) {
		root = webtemplates.AppMainContent()
	} else {
		header := shell.Header
		if page.Header != nil {
			header = *page.Header
		}
		root = webtemplates.AppLayout(webtemplates.LayoutOptions{
			Title:   page.Title,
			Lang:    shell.Lang,
			AppName: shell.AppName,
			Loc:     shell.Loc(),
			Header:  header,
		})
	}
	var buf bytes.Buffer
	if err := root.Render(ctx, &buf); err != nil {
		return err
	}
	httpx.WriteHTMLHeader(w, statusCode)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, _ = w.Write(buf.Bytes())
	return nil
}
