package templates

import (
	"fmt"

	webi18n "github.com/louisbranch/welcomepath/internal/services/web/i18n"
	"golang.org/x/text/message"
)

// Localizer provides catalog copy for templ components.
type Localizer = webi18n.Localizer

// T returns a catalog string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}
