// Package i18n holds the dashboard copy catalog.
//
// Copy is registered for English only. Components read it through a
// Localizer so no user-visible string is hard-coded in templates.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer formats catalog entries.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Default returns the catalog language.
func Default() language.Tag {
	return language.English
}

// Printer returns a localizer bound to the catalog language.
func Printer() *message.Printer {
	return message.NewPrinter(Default())
}
