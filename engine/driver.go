package engine

import "time"

// TickerDriver is a FrameDriver backed by time.Ticker
// Owned by the host loop goroutine, not safe for concurrent use
type TickerDriver struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewTickerDriver creates a stopped driver firing every interval
func NewTickerDriver(interval time.Duration) *TickerDriver {
	return &TickerDriver{interval: interval}
}

// Start begins delivering frames, repeated calls are ignored
func (d *TickerDriver) Start() {
	if d.ticker != nil {
		return
	}
	d.ticker = time.NewTicker(d.interval)
}

// Stop halts frame delivery, repeated calls are ignored
func (d *TickerDriver) Stop() {
	if d.ticker == nil {
		return
	}
	d.ticker.Stop()
	d.ticker = nil
}

// C returns the frame channel, nil while stopped so a select case on it blocks
func (d *TickerDriver) C() <-chan time.Time {
	if d.ticker == nil {
		return nil
	}
	return d.ticker.C
}

// Running reports whether frames are being delivered
func (d *TickerDriver) Running() bool {
	return d.ticker != nil
}
