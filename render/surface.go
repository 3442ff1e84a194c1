// Package render draws the simulation onto a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/core"
)

// halfBlock paints the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// TerminalSurface is an engine.Surface over a tcell screen
// Map units are scaled to square pixels, two pixel rows per terminal cell,
// keeping the field aspect ratio and centring it below the HUD line
// Owned by the host loop goroutine, not safe for concurrent use
type TerminalSurface struct {
	screen     tcell.Screen
	mapW, mapH float64

	buf   *core.PixelBuffer
	bg    core.RGB
	scale float64 // map units per pixel

	originX, originY int
	cols, rows       int

	// frame holds the rects drawn since the last Clear, replayed on Resize
	frame []drawOp
}

type drawOp struct {
	rect  core.Rect
	color core.RGB
}

// NewTerminalSurface creates a surface sized to the current screen
func NewTerminalSurface(screen tcell.Screen, mapW, mapH float64) *TerminalSurface {
	s := &TerminalSurface{
		screen: screen,
		mapW:   mapW,
		mapH:   mapH,
		buf:    core.NewPixelBuffer(0, 0),
		bg:     core.MustParseHex(constants.BackgroundColor),
	}
	s.Resize()
	return s
}

// Resize recomputes the layout from the screen size and repaints the last frame at the new scale
func (s *TerminalSurface) Resize() {
	w, h := s.screen.Size()
	avail := h - constants.HUDHeight
	if w <= 0 || avail <= 0 {
		s.scale, s.cols, s.rows = 0, 0, 0
		s.buf.Resize(0, 0)
		return
	}

	s.scale = math.Max(s.mapW/float64(w), s.mapH/float64(2*avail))
	pw := min(int(math.Ceil(s.mapW/s.scale)), w)
	ph := min(int(math.Ceil(s.mapH/s.scale)), 2*avail)

	s.cols = pw
	s.rows = (ph + 1) / 2
	s.originX = (w - s.cols) / 2
	s.originY = constants.HUDHeight
	s.buf.Resize(pw, ph)
	s.buf.Clear(s.bg)
	for _, op := range s.frame {
		s.fill(op.rect, op.color)
	}
}

// Field returns the play area in cells
func (s *TerminalSurface) Field() (x, y, cols, rows int) {
	return s.originX, s.originY, s.cols, s.rows
}

// Scale returns map units per pixel, zero when the screen is too small
func (s *TerminalSurface) Scale() float64 {
	return s.scale
}

// Pixel returns the buffered color at a pixel
func (s *TerminalSurface) Pixel(x, y int) (core.RGB, bool) {
	return s.buf.Get(x, y)
}

// DrawRect implements engine.Surface
// Rectangles snap to the nearest pixel edges and are never thinner than one pixel
func (s *TerminalSurface) DrawRect(r core.Rect, color core.RGB) {
	if !r.Valid() {
		return
	}
	s.frame = append(s.frame, drawOp{rect: r, color: color})
	s.fill(r, color)
}

func (s *TerminalSurface) fill(r core.Rect, color core.RGB) {
	if s.scale == 0 {
		return
	}
	x0, x1 := s.span(r.X, r.Right(), r.Width)
	y0, y1 := s.span(r.Y, r.Bottom(), r.Height)
	s.buf.FillRect(x0, y0, x1, y1, color)
}

func (s *TerminalSurface) span(lo, hi, size float64) (int, int) {
	a := int(math.Floor(lo/s.scale + 0.5))
	b := int(math.Floor(hi/s.scale + 0.5))
	if b <= a && size > 0 {
		b = a + 1
	}
	return a, b
}

// Clear implements engine.Surface
func (s *TerminalSurface) Clear(color core.RGB) {
	s.bg = color
	s.frame = s.frame[:0]
	s.buf.Clear(color)
}

// Width implements engine.Surface, in pixels
func (s *TerminalSurface) Width() int {
	return s.buf.Width()
}

// Height implements engine.Surface, in pixels
func (s *TerminalSurface) Height() int {
	return s.buf.Height()
}

// Present flushes the frame, HUD and optional banner to the screen
func (s *TerminalSurface) Present(st Status) {
	s.screen.Clear()
	s.flush(st.Banner != "")
	drawHUD(s.screen, st)
	if st.Banner != "" {
		drawBanner(s.screen, s.originX, s.originY, s.cols, s.rows, st.Banner)
	}
	s.screen.Show()
	s.buf.ClearDirty()
}

func (s *TerminalSurface) flush(dim bool) {
	shade := func(c core.RGB) core.RGB {
		if dim {
			return c.Blend(core.RGBBlack, DimFactor)
		}
		return c
	}

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top, _ := s.buf.Get(col, 2*row)
			bottom, ok := s.buf.Get(col, 2*row+1)
			if !ok {
				bottom = s.bg
			}
			s.screen.SetContent(s.originX+col, s.originY+row, halfBlock, nil, Style(shade(top), shade(bottom)))
		}
	}
}
