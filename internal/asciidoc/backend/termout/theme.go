package termout

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the palette termout renders against. Unlike htmlout/manout,
// which have no notion of color, a terminal renderer needs one — this is
// adapted from the teacher's internal/theme.Theme, trimmed to the roles
// this backend actually styles.
type Theme struct {
	Heading   lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Bold      lipgloss.Color
	admonition lipgloss.Color // base accent; severities are interpolated from it
}

var defaultTheme = &Theme{
	Heading:    lipgloss.Color("99"),
	Muted:      lipgloss.Color("240"),
	Border:     lipgloss.Color("240"),
	Bold:       lipgloss.Color("229"),
	admonition: lipgloss.Color("99"),
}

// admonitionSeverity orders NOTE..CAUTION from calmest to most urgent, so
// each can be interpolated to a distinct accent along the same hue ramp.
var admonitionSeverity = map[string]float64{
	"NOTE":      0.0,
	"TIP":       0.2,
	"IMPORTANT": 0.5,
	"WARNING":   0.75,
	"CAUTION":   1.0,
}

// admonitionAccent blends the theme's base admonition color toward red as
// severity rises, returning a lipgloss color string ("#rrggbb").
func admonitionAccent(th *Theme, kind string) lipgloss.Color {
	ratio, ok := admonitionSeverity[kind]
	if !ok {
		return th.admonition
	}

	base, err := parseToColorful(th.admonition)
	if err != nil {
		return th.admonition
	}
	alarm, _ := colorful.Hex("#d9534f")

	return lipgloss.Color(base.BlendLab(alarm, ratio).Hex())
}

func parseToColorful(c lipgloss.Color) (colorful.Color, error) {
	return colorful.Hex(hexOf(c))
}

// hexOf resolves a lipgloss.Color to a hex string usable by go-colorful.
// termout only ever constructs themes with hex-literal colors, so ANSI
// 256 resolution (which the teacher's gradient.go handles) isn't needed
// here.
func hexOf(c lipgloss.Color) string {
	s := string(c)
	if len(s) > 0 && s[0] == '#' {
		return s
	}

	// Fall back to a neutral gray for non-hex (e.g. ANSI index) colors.
	return "#808080"
}

func init() {
	defaultTheme.Heading = lipgloss.Color("#8839ef")
	defaultTheme.Muted = lipgloss.Color("#6c7086")
	defaultTheme.Border = lipgloss.Color("#6c7086")
	defaultTheme.Bold = lipgloss.Color("#f9e2af")
	defaultTheme.admonition = lipgloss.Color("#89b4fa")
}
