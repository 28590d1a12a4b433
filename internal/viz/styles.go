package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
)

// Blend composites ink over bg at the ink's alpha scaled by opacity.
func Blend(bg, ink color.NRGBA, opacity float64) colorful.Color {
	base := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	fg := colorful.Color{R: float64(ink.R) / 255, G: float64(ink.G) / 255, B: float64(ink.B) / 255}
	return base.BlendRgb(fg, float64(ink.A)/255*opacity).Clamped()
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex())
}

// Paint renders the canvas with per-cell colors composited onto bg. Runs
// of cells sharing a color are emitted as one styled segment.
func Paint(c *Canvas, bg color.NRGBA, opacity float64) string {
	bgColor := hex(bg)
	empty := lipgloss.NewStyle().Background(bgColor)
	styles := make(map[color.NRGBA]lipgloss.Style)
	styleFor := func(ink color.NRGBA) lipgloss.Style {
		if ink.A == 0 {
			return empty
		}
		s, ok := styles[ink]
		if !ok {
			s = lipgloss.NewStyle().
				Background(bgColor).
				Foreground(lipgloss.Color(Blend(bg, ink, opacity).Hex()))
			styles[ink] = s
		}
		return s
	}

	var b strings.Builder
	var run strings.Builder
	for row := 0; row < c.Height; row++ {
		run.Reset()
		var cur color.NRGBA
		for col := 0; col < c.Width; col++ {
			ink := c.Ink[row][col]
			if col > 0 && ink != cur {
				b.WriteString(styleFor(cur).Render(run.String()))
				run.Reset()
			}
			cur = ink
			run.WriteRune(c.Grid[row][col])
		}
		if run.Len() > 0 {
			b.WriteString(styleFor(cur).Render(run.String()))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// GradientText colors text along a blend from start to end.
func GradientText(text string, start, end color.NRGBA) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	s := colorful.Color{R: float64(start.R) / 255, G: float64(start.G) / 255, B: float64(start.B) / 255}
	e := colorful.Color{R: float64(end.R) / 255, G: float64(end.G) / 255, B: float64(end.B) / 255}

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.BlendLab(e, t).Clamped().Hex()))
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}

// SparklineChart renders a mini sparkline from values
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	if len(values) > width {
		values = values[len(values)-width:]
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var result strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		result.WriteRune(chars[idx])
	}
	return result.String()
}
