package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/lane-racer/constants"
)

// glide is the per-sample fraction of the gap to the target pitch closed by the hum
const glide = 0.0005

// HumGenerator is an endless engine drone whose pitch follows the vehicle speed
// SetSpeed may be called from any goroutine while the speaker streams
type HumGenerator struct {
	rate   beep.SampleRate
	target atomic.Uint64 // float64 bits

	freq  float64
	phase float64
}

// NewHumGenerator creates a hum idling at the base frequency
func NewHumGenerator(rate beep.SampleRate) *HumGenerator {
	h := &HumGenerator{rate: rate, freq: constants.HumBaseFrequency}
	h.target.Store(math.Float64bits(constants.HumBaseFrequency))
	return h
}

// HumFrequency maps a vehicle speed to the hum pitch
func HumFrequency(speed float64) float64 {
	f := constants.HumBaseFrequency + constants.HumFrequencyGain*max(speed, 0)
	return min(f, constants.HumMaxFrequency)
}

// SetSpeed retargets the pitch, the hum glides there instead of jumping
func (h *HumGenerator) SetSpeed(speed float64) {
	h.target.Store(math.Float64bits(HumFrequency(speed)))
}

// Target returns the pitch the hum is gliding toward
func (h *HumGenerator) Target() float64 {
	return math.Float64frombits(h.target.Load())
}

func (h *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	target := h.Target()
	for i := range samples {
		h.freq += (target - h.freq) * glide

		// Saw for grit over a sine body
		val := 0.6*waveSample(WaveSine, h.phase) + 0.4*waveSample(WaveSaw, h.phase)
		samples[i][0] = val
		samples[i][1] = val

		h.phase += h.freq / float64(h.rate)
		h.phase -= math.Floor(h.phase)
	}
	return len(samples), true
}

func (h *HumGenerator) Err() error { return nil }
