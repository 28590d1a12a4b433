package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/netbg/internal/render"
)

// FrameToSVG converts a recorded frame to SVG. Draw calls before the last
// Clear are dropped; opacity scales every paint's alpha.
func FrameToSVG(rec *render.Recorder, width, height float64, bg color.NRGBA, opacity float64) string {
	if rec == nil {
		return ""
	}

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgColor(bg)))

	start := 0
	for i, op := range rec.Ops {
		if op.Kind == render.OpClear {
			start = i + 1
		}
	}

	for _, op := range rec.Ops[start:] {
		alpha := float64(op.Color.A) / 255 * opacity
		switch op.Kind {
		case render.OpCircle:
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.3f"/>
`, op.X0, op.Y0, op.Width, svgColor(op.Color), alpha))
		case render.OpLine:
			sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"/>
`, op.X0, op.Y0, op.X1, op.Y1, svgColor(op.Color), alpha, op.Width))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func svgColor(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
