package nav

// Icon references in nav items are resolved through a fixed capability
// table mapping names to the glyph tokens the renderer understands. Unknown
// references degrade to the fallback glyph; they never fail composition.

// FallbackGlyph is rendered for unknown icon references.
const FallbackGlyph = "square"

var iconGlyphs = map[string]string{
	"home":      "home",
	"pages":     "file-stack",
	"blocks":    "layout-grid",
	"media":     "image",
	"users":     "users",
	"briefcase": "briefcase",
	"inbox":     "inbox",
	"chart":     "bar-chart",
	"invoice":   "receipt",
	"store":     "shopping-bag",
	"book":      "book-open",
	"settings":  "settings",
	"plug":      "plug",
}

// ResolveIcon maps an icon reference to its glyph token
func ResolveIcon(name string) string {
	if glyph, ok := iconGlyphs[name]; ok {
		return glyph
	}
	return FallbackGlyph
}
