package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/welcomepath/internal/platform/icons"
)

// HeaderView carries the signed-in user shown in the header badge.
type HeaderView struct {
	UserName     string
	UserInitials string
}

// AppHeader renders the brand bar with notification buttons and the user badge.
func AppHeader(appName string, header HeaderView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<header class="app-header"><nav class="app-nav"><div class="app-nav-inner">`)
		m.raw(`<div class="brand">`)
		m.render(ctx, Icon(icons.Logo))
		m.raw(`<span class="brand-name">`)
		m.text(appName)
		m.raw(`</span></div>`)
		m.raw(`<div class="header-actions">`)
		m.render(ctx, IconButton(icons.Bell, T(loc, "header.notifications")))
		m.render(ctx, IconButton(icons.Bell, T(loc, "header.messages")))
		m.render(ctx, UserProfile(header.UserInitials, header.UserName))
		m.raw(`</div></div></nav></header>`)
		return m.err
	})
}

// WelcomeMessage renders the greeting banner.
func WelcomeMessage(firstName string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<section class="welcome"><h1 class="welcome-heading">`)
		m.text(T(loc, "dashboard.welcome.heading", firstName))
		m.raw(`</h1><p class="welcome-subtitle">`)
		m.text(T(loc, "dashboard.welcome.subtitle"))
		m.raw(`</p></section>`)
		return m.err
	})
}

type footerLink struct {
	key     string
	primary bool
}

var footerLinks = []footerLink{
	{key: "footer.support", primary: true},
	{key: "footer.privacy"},
	{key: "footer.terms"},
}

// AppFooter renders the static footer links.
func AppFooter(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<footer class="app-footer"><nav class="footer-nav">`)
		for _, link := range footerLinks {
			class := "footer-link"
			if link.primary {
				class += " footer-link-primary"
			}
			m.raw(`<a href="#"`)
			m.attr("class", class)
			m.raw(`>`)
			m.text(T(loc, link.key))
			m.raw(`</a>`)
		}
		m.raw(`</nav></footer>`)
		return m.err
	})
}
