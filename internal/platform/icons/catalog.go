package icons

// ID identifies a glyph.
type ID string

const (
	Logo            ID = "logo"
	Bell            ID = "bell"
	CheckComplete   ID = "check-complete"
	CheckIncomplete ID = "check-incomplete"
)

// Markup returns the SVG markup for a glyph.
func Markup(id ID) (string, bool) {
	svg, ok := glyphs[id]
	return svg, ok
}
