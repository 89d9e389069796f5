package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sliding to a target frequency
type oscillator struct {
	freq     float64
	slide    float64 // frequency change per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	var slide float64
	if samples > 0 {
		slide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		slide:    slide,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.freq += o.slide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear volume
// math.Log2(0) is -Inf, so 0 volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue timings
const (
	pickupNoteDuration = 70 * time.Millisecond
	buildDuration      = 250 * time.Millisecond
	deniedDuration     = 120 * time.Millisecond
	gameOverDuration   = 900 * time.Millisecond
	cueAttack          = 5 * time.Millisecond
)

// Cue frequencies
const (
	pickupLowHz   = 987.77  // B5
	pickupHighHz  = 1318.51 // E6
	buildThumpHz  = 90.0
	deniedBuzzHz  = 100.0
	gameOverTopHz = 440.0
	gameOverEndHz = 55.0
)

// newCue builds the streamer for c at the given linear volume, nil for unknown cues
func newCue(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CuePickup:
		n1 := NewEnvelope(NewOscillator(pickupLowHz, pickupNoteDuration, WaveSquare, rate),
			pickupNoteDuration, cueAttack, 40*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(pickupHighHz, 2*pickupNoteDuration, WaveSquare, rate),
			2*pickupNoteDuration, cueAttack, 100*time.Millisecond, rate)
		s = newVolume(beep.Seq(n1, n2), 0.3)

	case CueBuild:
		thump := NewEnvelope(NewSweep(2*buildThumpHz, buildThumpHz, buildDuration, WaveSine, rate),
			buildDuration, cueAttack, 200*time.Millisecond, rate)
		knock := NewEnvelope(NewOscillator(0, 40*time.Millisecond, WaveNoise, rate),
			40*time.Millisecond, 0, 30*time.Millisecond, rate)
		s = beep.Mix(newVolume(thump, 0.7), newVolume(knock, 0.2))

	case CueDenied:
		s = newVolume(NewEnvelope(NewOscillator(deniedBuzzHz, deniedDuration, WaveSaw, rate),
			deniedDuration, cueAttack, 60*time.Millisecond, rate), 0.4)

	case CueGameOver:
		s = newVolume(NewEnvelope(NewSweep(gameOverTopHz, gameOverEndHz, gameOverDuration, WaveSaw, rate),
			gameOverDuration, 20*time.Millisecond, 500*time.Millisecond, rate), 0.5)

	default:
		return nil
	}
	return newVolume(s, vol)
}
