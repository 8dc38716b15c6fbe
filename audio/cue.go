// Package audio plays short synthesized cues through the system speaker
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue defaults
const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultFrequency  = 880.0
	DefaultLength     = 50 * time.Millisecond
	DefaultVolume     = -1.0 // log2 gain, -1 halves amplitude
)

// Cue is a sine tone of fixed pitch and length
// A nil *Cue is valid and silent
type Cue struct {
	sampleRate beep.SampleRate
	frequency  float64
	length     time.Duration
	volume     float64
	ready      bool
}

// NewCue initializes the speaker and returns a playable cue
// Initialization failure is returned; callers typically log it and continue silently
func NewCue(frequency float64, length time.Duration) (*Cue, error) {
	c := newCue(DefaultSampleRate, frequency, length)
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	c.ready = true
	return c, nil
}

func newCue(sr beep.SampleRate, frequency float64, length time.Duration) *Cue {
	return &Cue{
		sampleRate: sr,
		frequency:  frequency,
		length:     length,
		volume:     DefaultVolume,
	}
}

// Streamer builds a fresh tone stream of the cue's length
func (c *Cue) Streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(c.sampleRate, c.frequency)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", c.frequency, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(c.sampleRate.N(c.length), sine),
		Base:     2,
		Volume:   c.volume,
	}, nil
}

// Play queues the tone without blocking
func (c *Cue) Play() {
	if c == nil || !c.ready {
		return
	}
	s, err := c.Streamer()
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(s)
}

// Close releases the speaker
func (c *Cue) Close() {
	if c == nil || !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}
