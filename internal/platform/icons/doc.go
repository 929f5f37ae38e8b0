// Package icons defines the glyphs rendered by the dashboard.
//
// Each glyph is a stable identifier paired with self-contained SVG markup.
// Glyphs take no inputs and carry no state; templates embed the markup as-is.
package icons
