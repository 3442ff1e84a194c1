package components

import (
	"math"
	"testing"

	"github.com/lixenwraith/lane-racer/core"
)

var testColors = BodyColors{
	Body:       core.RGB{R: 200},
	Windshield: core.RGB{B: 200},
	Wheel:      core.RGB{R: 20, G: 20, B: 20},
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestPlayer(x float64) *Car {
	return NewPlayerCar(x, 500, 400, NewCarBody(50, 80, testColors))
}

func TestCarBodyBounds(t *testing.T) {
	body := NewCarBody(50, 80, testColors)

	bounds := body.Bounds()
	want := core.Rect{X: 0, Y: 0, Width: 50, Height: 80}
	if bounds != want {
		t.Errorf("Bounds = %+v, want %+v", bounds, want)
	}
	if body.Width() != 50 || body.Height() != 80 {
		t.Errorf("Width/Height = %v/%v, want 50/80", body.Width(), body.Height())
	}
}

func TestPhysicalPartsFollowAnchor(t *testing.T) {
	car := newTestPlayer(175)

	first := make([]PhysicalPart, 0, len(car.Body))
	for p := range car.PhysicalParts() {
		first = append(first, p)
	}
	if len(first) != len(car.Body) {
		t.Fatalf("Expected %d parts, got %d", len(car.Body), len(first))
	}

	car.ShiftY(10)
	car.MoveLeft(5)

	i := 0
	for p := range car.PhysicalParts() {
		if !approxEqual(p.Rect.X, first[i].Rect.X-5) || !approxEqual(p.Rect.Y, first[i].Rect.Y+10) {
			t.Errorf("Part %d did not move rigidly: before %+v after %+v", i, first[i].Rect, p.Rect)
		}
		if p.Color != first[i].Color {
			t.Errorf("Part %d color changed", i)
		}
		i++
	}
}

func TestPhysicalPartsEarlyStop(t *testing.T) {
	car := newTestPlayer(175)

	count := 0
	for range car.PhysicalParts() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("Expected iteration to stop at 2, got %d", count)
	}

	// Sequence is restartable
	total := 0
	for range car.PhysicalParts() {
		total++
	}
	if total != len(car.Body) {
		t.Errorf("Expected restarted iteration to yield %d parts, got %d", len(car.Body), total)
	}
}

func TestLateralClamp(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
	}{
		{"left edge", 0},
		{"centered", 175},
		{"right edge", 350},
		{"fractional", 123.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := newTestPlayer(tt.startX)
			for i := 0; i < 200; i++ {
				car.MoveLeft(7)
				if car.X < 0 {
					t.Fatalf("X underflow: %v", car.X)
				}
			}
			if car.X != 0 {
				t.Errorf("Expected X=0 after moving left, got %v", car.X)
			}

			for i := 0; i < 200; i++ {
				car.MoveRight(7)
				if car.X > 350 {
					t.Fatalf("X overflow: %v", car.X)
				}
			}
			if car.X != 350 {
				t.Errorf("Expected X=350 after moving right, got %v", car.X)
			}
		})
	}
}

func TestNewCarClampsSpawnX(t *testing.T) {
	car := NewEnemyCar(390, -80, 400, NewCarBody(50, 80, testColors))
	if car.X != 350 {
		t.Errorf("Expected clamped X=350, got %v", car.X)
	}
	if car.Kind != KindEnemy {
		t.Errorf("Expected enemy kind, got %s", car.Kind)
	}
}

func TestRoadMarkingDefaultPosition(t *testing.T) {
	d := NewRoadMarking(400, 6, 40, core.RGBWhite)
	if d.Rect.X != 197 || d.Rect.Y != -40 {
		t.Errorf("Expected marking at (197, -40), got (%v, %v)", d.Rect.X, d.Rect.Y)
	}

	d.ShiftY(15)
	if d.Top() != -25 {
		t.Errorf("Expected Top=-25 after shift, got %v", d.Top())
	}
}

func TestCarKindString(t *testing.T) {
	if KindPlayer.String() != "Player" || KindEnemy.String() != "Enemy" {
		t.Error("Unexpected kind names")
	}
	if CarKind(9).String() != "Unknown" {
		t.Error("Expected Unknown for invalid kind")
	}
}
