package textcomponent

import (
	"regexp"
	"strings"
)

// MonospaceFont is the font hint forced on obfuscated text.
const MonospaceFont = "monospace"

// NamedColors is the Minecraft chat palette.
var NamedColors = map[string]string{
	"black":        "#000000",
	"dark_blue":    "#0000AA",
	"dark_green":   "#00AA00",
	"dark_aqua":    "#00AAAA",
	"dark_red":     "#AA0000",
	"dark_purple":  "#AA00AA",
	"gold":         "#FFAA00",
	"gray":         "#AAAAAA",
	"dark_gray":    "#555555",
	"blue":         "#5555FF",
	"green":        "#55FF55",
	"aqua":         "#55FFFF",
	"red":          "#FF5555",
	"light_purple": "#FF55FF",
	"yellow":       "#FFFF55",
	"white":        "#FFFFFF",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Color is an explicitly set color. An empty Hex means "reset to default".
type Color struct {
	Hex string
}

// ParseColor resolves a palette name, a #RRGGBB literal or "reset".
// Unknown values report false and must be treated as unset.
func ParseColor(value string) (*Color, bool) {
	value = strings.TrimSpace(value)
	if value == "reset" {
		return &Color{}, true
	}
	if hex, ok := NamedColors[strings.ToLower(value)]; ok {
		return &Color{Hex: hex}, true
	}
	if hexColor.MatchString(value) {
		return &Color{Hex: strings.ToUpper(value)}, true
	}
	return nil, false
}

// Style holds the attributes a node sets itself. Nil fields are inherited.
type Style struct {
	Color         *Color
	Bold          *bool
	Italic        *bool
	Underlined    *bool
	Strikethrough *bool
	Obfuscated    *bool
	Font          *string
}

// ResolvedStyle is the effective style of a segment after inheritance.
type ResolvedStyle struct {
	Color         string
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
	Font          string
}

// IsZero reports whether no attribute is in effect.
func (r ResolvedStyle) IsZero() bool {
	return r == ResolvedStyle{}
}

// merge applies s over r, child wins when set.
func (r ResolvedStyle) merge(s Style) ResolvedStyle {
	if s.Color != nil {
		r.Color = s.Color.Hex
	}
	if s.Bold != nil {
		r.Bold = *s.Bold
	}
	if s.Italic != nil {
		r.Italic = *s.Italic
	}
	if s.Underlined != nil {
		r.Underlined = *s.Underlined
	}
	if s.Strikethrough != nil {
		r.Strikethrough = *s.Strikethrough
	}
	if s.Obfuscated != nil {
		r.Obfuscated = *s.Obfuscated
	}
	if s.Font != nil {
		r.Font = *s.Font
	}
	return r
}

// withHints returns the style as rendered: obfuscated text is shown monospace.
// The hint is applied per segment so an explicit obfuscated=false on a child
// restores the inherited font.
func (r ResolvedStyle) withHints() ResolvedStyle {
	if r.Obfuscated {
		r.Font = MonospaceFont
	}
	return r
}
