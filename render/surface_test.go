package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func cellColors(t *testing.T, screen tcell.Screen, x, y int) (rune, core.RGB, core.RGB) {
	t.Helper()
	r, _, style, _ := screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	toRGB := func(c tcell.Color) core.RGB {
		cr, cg, cb := c.RGB()
		return core.RGB{R: uint8(cr), G: uint8(cg), B: uint8(cb)}
	}
	return r, toRGB(fg), toRGB(bg)
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestSurfaceLayout(t *testing.T) {
	tests := []struct {
		name             string
		w, h             int
		scale            float64
		x, y, cols, rows int
	}{
		{"exact fit", 40, 31, 10, 0, 1, 40, 30},
		{"wide terminal centres", 100, 31, 10, 30, 1, 40, 30},
		{"tall terminal limits by width", 20, 61, 20, 0, 1, 20, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTerminalSurface(newSimScreen(t, tt.w, tt.h), 400, 600)
			if s.Scale() != tt.scale {
				t.Errorf("Scale = %v, want %v", s.Scale(), tt.scale)
			}
			x, y, cols, rows := s.Field()
			if x != tt.x || y != tt.y || cols != tt.cols || rows != tt.rows {
				t.Errorf("Field = (%d,%d,%d,%d), want (%d,%d,%d,%d)", x, y, cols, rows, tt.x, tt.y, tt.cols, tt.rows)
			}
			if s.Width() != tt.cols || s.Height() != 2*tt.rows {
				t.Errorf("Pixel size %dx%d", s.Width(), s.Height())
			}
		})
	}
}

func TestSurfaceTooSmall(t *testing.T) {
	s := NewTerminalSurface(newSimScreen(t, 10, 1), 400, 600)
	if s.Scale() != 0 || s.Width() != 0 {
		t.Errorf("Expected empty field, scale %v width %d", s.Scale(), s.Width())
	}
	// Must not panic
	s.DrawRect(core.Rect{Width: 10, Height: 10}, core.RGBWhite)
	s.Present(Status{Banner: "x"})
}

func TestDrawRectSnapsToPixels(t *testing.T) {
	s := NewTerminalSurface(newSimScreen(t, 40, 31), 400, 600)
	bg := core.MustParseHex("#E6E6F5")
	red := core.RGB{R: 214, G: 69, B: 69}
	s.Clear(bg)

	s.DrawRect(core.Rect{X: 0, Y: 0, Width: 50, Height: 80}, red)
	if c, _ := s.Pixel(4, 7); c != red {
		t.Errorf("Inside pixel = %v, want %v", c, red)
	}
	if c, _ := s.Pixel(5, 0); c != bg {
		t.Errorf("Pixel right of the rect = %v, want background", c)
	}
	if c, _ := s.Pixel(0, 8); c != bg {
		t.Errorf("Pixel below the rect = %v, want background", c)
	}

	// Sub-pixel marking still shows as one column
	s.DrawRect(core.Rect{X: 197, Y: 100, Width: 6, Height: 40}, core.RGBWhite)
	if c, _ := s.Pixel(20, 12); c != core.RGBWhite {
		t.Errorf("Thin marking not drawn, got %v", c)
	}
	if c, _ := s.Pixel(21, 12); c != bg {
		t.Errorf("Thin marking drawn two pixels wide")
	}

	// Partially off-field rects are clipped
	s.DrawRect(core.Rect{X: 380, Y: -80, Width: 50, Height: 80}, red)
	if c, _ := s.Pixel(39, 0); c != bg {
		t.Errorf("Rect above the field leaked in, got %v", c)
	}
}

func TestResizeRepaintsLastFrame(t *testing.T) {
	screen := newSimScreen(t, 40, 31)
	s := NewTerminalSurface(screen, 400, 600)
	bg := core.MustParseHex("#E6E6F5")
	red := core.RGB{R: 214, G: 69, B: 69}
	s.Clear(bg)
	s.DrawRect(core.Rect{X: 0, Y: 0, Width: 50, Height: 80}, red)

	// Scale 10 -> 20, the rect now covers pixels [0,3) x [0,4)
	screen.SetSize(20, 61)
	s.Resize()
	if c, _ := s.Pixel(2, 3); c != red {
		t.Errorf("Rect lost on resize, pixel = %v", c)
	}
	if c, _ := s.Pixel(3, 0); c != bg {
		t.Errorf("Rect not rescaled, pixel right of it = %v", c)
	}

	s.Present(Status{Banner: "Final score: 0."})
	if _, _, cbg := cellColors(t, screen, 0, 1); cbg != red.Blend(core.RGBBlack, DimFactor) {
		t.Errorf("Dimmed crash scene missing under banner, got %v", cbg)
	}

	// Clear starts a new frame, old rects are not replayed
	s.Clear(bg)
	screen.SetSize(40, 31)
	s.Resize()
	if c, _ := s.Pixel(0, 0); c != bg {
		t.Errorf("Cleared frame replayed on resize, pixel = %v", c)
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 40, 31)
	s := NewTerminalSurface(screen, 400, 600)
	bg := core.MustParseHex("#E6E6F5")
	blue := core.RGB{R: 47, G: 111, B: 221}
	s.Clear(bg)

	// One pixel row: y 10..20 map units is pixel row 1, the lower half of cell row 0
	s.DrawRect(core.Rect{X: 0, Y: 10, Width: 10, Height: 10}, blue)
	s.Present(Status{Score: 3, Speed: 4.25, Distance: 3120})

	r, fg, cbg := cellColors(t, screen, 0, 1)
	if r != halfBlock {
		t.Fatalf("Expected half block, got %q", r)
	}
	if fg != bg || cbg != blue {
		t.Errorf("Cell colors fg=%v bg=%v, want fg=%v bg=%v", fg, cbg, bg, blue)
	}

	if hud := rowText(screen, 0); !strings.Contains(hud, "Score 3") || !strings.Contains(hud, "Speed 4.2") {
		t.Errorf("HUD line = %q", hud)
	}
}

func TestPresentBannerDimsField(t *testing.T) {
	screen := newSimScreen(t, 40, 31)
	s := NewTerminalSurface(screen, 400, 600)
	bg := core.MustParseHex("#E6E6F5")
	s.Clear(bg)

	s.Present(Status{Banner: "New high score!\nFinal score: 12."})

	_, fg, _ := cellColors(t, screen, 0, 1)
	if fg == bg || fg.R >= bg.R {
		t.Errorf("Field not dimmed under banner: %v", fg)
	}

	var found []string
	for y := 1; y < 31; y++ {
		row := rowText(screen, y)
		for _, want := range []string{"New high score!", "Final score: 12."} {
			if strings.Contains(row, want) {
				found = append(found, want)
			}
		}
	}
	if len(found) != 2 || found[0] != "New high score!" {
		t.Errorf("Banner lines found in order %v", found)
	}
}

func TestStatusLine(t *testing.T) {
	st := Status{Score: 2, HighScore: 5, HasHighScore: true, Speed: 4, Distance: 2500.4, Muted: true}
	want := " Score 2  Best 5  Speed 4.0  Distance 2500  [muted]"
	if got := st.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
	if got := (Status{}).Line(); strings.Contains(got, "Best") {
		t.Errorf("Best shown without a stored score: %q", got)
	}
}

func TestSurfaceDrivesEngineFrame(t *testing.T) {
	screen := newSimScreen(t, 40, 31)
	s := NewTerminalSurface(screen, 400, 600)

	cfg := engine.DefaultConfig()
	cfg.Seed = 1
	g, err := engine.NewGame(cfg, engine.Options{Surface: s})
	if err != nil {
		t.Fatal(err)
	}
	g.Run()
	if err := g.Tick(); err != nil {
		t.Fatal(err)
	}

	// Player chassis centre lies at map (200, 540) -> pixel (20, 54)
	if c, _ := s.Pixel(20, 54); c != cfg.Palette.Player.Body {
		t.Errorf("Player body not drawn at its pixel, got %v", c)
	}
}
