package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/welcomepath/internal/services/web/routepath"
)

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title   string
	Lang    string
	AppName string
	Loc     Localizer
	Header  HeaderView
}

// ComposePageTitle appends the app name unless title already carries it.
func ComposePageTitle(title, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return title
	}
	if title == "" {
		return appName
	}
	if strings.HasSuffix(title, "| "+appName) {
		return title
	}
	if base, ok := strings.CutSuffix(title, " - "+appName); ok {
		title = strings.TrimSpace(base)
	}
	return title + " | " + appName
}

// AppLayout renders the full HTML document around the context children.
func AppLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en"
		}
		m := newMarkup(w)
		m.raw(`<!doctype html><html`)
		m.attr("lang", lang)
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		m.text(ComposePageTitle(opts.Title, opts.AppName))
		m.raw(`</title><link rel="stylesheet"`)
		m.attr("href", routepath.Stylesheet)
		m.raw(`></head><body><div id="root" class="page">`)
		m.render(ctx, AppHeader(opts.AppName, opts.Header, opts.Loc))
		m.render(templ.WithChildren(ctx, children), AppMainContent())
		m.render(ctx, AppFooter(opts.Loc))
		m.raw(`</div></body></html>`)
		return m.err
	})
}

// AppMainContent renders the main landmark around the context children.
// HTMX requests receive this element alone.
func AppMainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		m := newMarkup(w)
		m.raw(`<main id="main" class="main"><div class="container">`)
		m.render(ctx, children)
		m.raw(`</div></main>`)
		return m.err
	})
}
