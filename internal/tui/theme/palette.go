// Package theme provides color themes for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Warning     lipgloss.Color

	TextOnAccent lipgloss.Color

	Rooms []RoomColors

	Modal ModalColors
}

// RoomColors holds the colors of one room panel.
type RoomColors struct {
	Accent lipgloss.Color // border and header
	Bg     lipgloss.Color // panel body
	BgAlt  lipgloss.Color // zebra rows
	Text   lipgloss.Color // text on Accent
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	isLight := isLightTheme(t.Bg)

	rooms := make([]RoomColors, 0, 5)
	for _, accent := range t.Rooms() {
		bgHex := roomBaseBg(accent, t.Bg, isLight)
		rooms = append(rooms, RoomColors{
			Accent: lipgloss.Color(accent),
			Bg:     lipgloss.Color(bgHex),
			BgAlt:  lipgloss.Color(alternateShade(bgHex, isLight)),
			Text:   lipgloss.Color(chooseTextColor(accent, t.Bg, t.Fg)),
		})
	}

	modalPalette := t.Modal()
	modalBgHex := coalesce(modalPalette.BaseBg, t.BgHighlight, t.Bg)
	modalTextHex := coalesce(modalPalette.TextPrimary, t.Fg)
	modalMutedHex := coalesce(modalPalette.TextMuted, t.FgMuted)
	modalHighlightHex := coalesce(modalPalette.Highlight, t.BgSelection, t.Accent)
	modalBorderHex := coalesce(modalPalette.ModalBorder, t.Accent)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Warning:     lipgloss.Color(t.Warning),

		TextOnAccent: lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),

		Rooms: rooms,

		Modal: ModalColors{
			Bg:          lipgloss.Color(modalBgHex),
			Border:      adaptiveColor(modalBorderHex),
			Text:        adaptiveColor(modalTextHex),
			Muted:       adaptiveColor(modalMutedHex),
			Highlight:   adaptiveColor(modalHighlightHex),
			ReverseText: reverseTextColor(modalBgHex, modalTextHex),
		},
	}
}

// Room returns the panel colors for the room at ordinal i.
func (p *Palette) Room(i int) RoomColors {
	if len(p.Rooms) == 0 {
		return RoomColors{Accent: p.Accent, Bg: p.Bg, BgAlt: p.BgHighlight, Text: p.TextOnAccent}
	}
	if i < 0 {
		i = -i
	}
	return p.Rooms[i%len(p.Rooms)]
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// parseColor parses a #rrggbb color. ok is false for anything else.
func parseColor(hex string) (colorful.Color, bool) {
	if len(hex) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	return c, err == nil
}

// roomBaseBg derives a panel background from a room accent color.
func roomBaseBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.80)
	}
	return darkenColor(accent)
}

// darkenColor halves each channel, floored so panels stay visible on dark
// themes.
func darkenColor(hex string) string {
	c, ok := parseColor(hex)
	if !ok {
		return hex
	}
	const floor = 40.0 / 255
	return colorful.Color{
		R: max(c.R*0.5, floor),
		G: max(c.G*0.5, floor),
		B: max(c.B*0.5, floor),
	}.Hex()
}

// alternateShade creates a subtle alternate shade for zebra rows.
func alternateShade(hex string, isLight bool) string {
	if isLight {
		return blendColors(hex, "#000000", 0.10)
	}
	return blendColors(hex, "#ffffff", 0.30)
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Dark:  hex,
		Light: hex,
	}
}

func reverseTextColor(darkBg, lightText string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Dark:  darkBg,
		Light: lightText,
	}
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance is the WCAG luminance of a hex color, 0 if unparsable.
func relativeLuminance(hex string) float64 {
	c, ok := parseColor(hex)
	if !ok {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a towards b by ratio in RGB space.
func blendColors(a, b string, ratio float64) string {
	ca, ok := parseColor(a)
	if !ok {
		return a
	}
	cb, ok := parseColor(b)
	if !ok {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Hex()
}
