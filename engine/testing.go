package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/lane-racer/core"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}

// DrawCall is one recorded surface operation
type DrawCall struct {
	Clear bool
	Rect  core.Rect
	Color core.RGB
}

// RecordingSurface records draw calls since the last Clear
type RecordingSurface struct {
	W, H   int
	Calls  []DrawCall
	Clears int
}

// NewRecordingSurface creates a recording surface of the given size
func NewRecordingSurface(w, h int) *RecordingSurface {
	return &RecordingSurface{W: w, H: h}
}

func (s *RecordingSurface) DrawRect(r core.Rect, color core.RGB) {
	s.Calls = append(s.Calls, DrawCall{Rect: r, Color: color})
}

func (s *RecordingSurface) Clear(color core.RGB) {
	s.Clears++
	s.Calls = append(s.Calls[:0], DrawCall{Clear: true, Color: color})
}

func (s *RecordingSurface) Width() int  { return s.W }
func (s *RecordingSurface) Height() int { return s.H }

// ScriptedKeys is a KeyInput whose held keys are set directly by tests
type ScriptedKeys struct {
	Tracked []string
	Down    map[string]bool
}

func (k *ScriptedKeys) KeyIsDown(key string) bool {
	return k.Down[key]
}

// ScriptedKeyFactory returns a factory that records every subscription it hands out
func ScriptedKeyFactory() (KeyInputFactory, *[]*ScriptedKeys) {
	var made []*ScriptedKeys
	return func(tracked []string) KeyInput {
		k := &ScriptedKeys{Tracked: tracked, Down: make(map[string]bool)}
		made = append(made, k)
		return k
	}, &made
}

// ManualDriver records Start and Stop calls, ticks are issued by the test
type ManualDriver struct {
	Starts, Stops int
	Running       bool
}

func (d *ManualDriver) Start() {
	d.Starts++
	d.Running = true
}

func (d *ManualDriver) Stop() {
	d.Stops++
	d.Running = false
}
