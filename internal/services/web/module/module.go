// Package module defines the contract between web modules and the composition root.
package module

import (
	"net/http"
	"strings"

	"github.com/louisbranch/welcomepath/internal/onboarding"
	webi18n "github.com/louisbranch/welcomepath/internal/services/web/i18n"
	"github.com/louisbranch/welcomepath/internal/services/web/templates"
)

// Module is the contract each web area implements.
type Module interface {
	ID() string
	Mount(deps Dependencies) (Mount, error)
}

// Mount describes where a module attaches on the root mux.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Shell carries the app-shell state every full page renders with.
type Shell struct {
	AppName   string
	Lang      string
	Header    templates.HeaderView
	Localizer webi18n.Localizer
}

// Loc returns the shell localizer, defaulting to the catalog printer.
func (s Shell) Loc() webi18n.Localizer {
	if s.Localizer != nil {
		return s.Localizer
	}
	return webi18n.Printer()
}

// Dependencies are the values modules are built from.
type Dependencies struct {
	Shell    Shell
	Snapshot onboarding.Snapshot
}

// NewDependencies derives the shell from the snapshot user.
func NewDependencies(appName string, snapshot onboarding.Snapshot) Dependencies {
	return Dependencies{
		Shell: Shell{
			AppName: strings.TrimSpace(appName),
			Lang:    webi18n.Default().String(),
			Header: templates.HeaderView{
				UserName:     snapshot.User.Name,
				UserInitials: snapshot.User.Initials,
			},
		},
		Snapshot: snapshot,
	}
}
