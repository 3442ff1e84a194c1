package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the per-frame text shown around the field
type Status struct {
	Score        int
	HighScore    int
	HasHighScore bool
	Speed        float64
	Distance     float64
	Muted        bool

	// Hint is the right-aligned key help
	Hint string

	// Banner is drawn centred over a dimmed field when not empty, lines split on \n
	Banner string
}

// Line formats the left HUD text
func (st Status) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, " Score %d", st.Score)
	if st.HasHighScore {
		fmt.Fprintf(&b, "  Best %d", st.HighScore)
	}
	fmt.Fprintf(&b, "  Speed %.1f  Distance %.0f", st.Speed, st.Distance)
	if st.Muted {
		b.WriteString("  [muted]")
	}
	return b.String()
}

func drawHUD(screen tcell.Screen, st Status) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	style := Style(RgbBannerForeground, RgbHUDBackground)
	for x := 0; x < w; x++ {
		screen.SetContent(x, 0, ' ', nil, style)
	}

	left := runewidth.Truncate(st.Line(), w, "…")
	end := drawText(screen, 0, 0, left, style)

	if st.Hint == "" {
		return
	}
	hint := st.Hint + " "
	hw := runewidth.StringWidth(hint)
	if x := w - hw; x > end {
		drawText(screen, x, 0, hint, style)
	}
}

// drawBanner centres the banner lines in a padded box inside the field
func drawBanner(screen tcell.Screen, fx, fy, cols, rows int, text string) {
	lines := strings.Split(text, "\n")

	inner := 0
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	boxW := min(inner+4, cols)
	boxH := min(len(lines)+2, rows)
	if boxW <= 0 || boxH <= 0 {
		return
	}

	x0 := fx + (cols-boxW)/2
	y0 := fy + (rows-boxH)/2
	style := Style(RgbBannerForeground, RgbBannerBackground)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	for i, l := range lines {
		y := y0 + 1 + i
		if y >= y0+boxH-1 {
			break
		}
		l = runewidth.Truncate(l, boxW-2, "…")
		x := x0 + (boxW-runewidth.StringWidth(l))/2
		drawText(screen, x, y, l, style)
	}
}

// drawText writes s from x and returns the column after the last cell
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
