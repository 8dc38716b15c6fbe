package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestCueStreamerLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	c := newCue(sr, 440, 50*time.Millisecond)

	s, err := c.Streamer()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	buf := make([][2]float64, 128)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok {
			break
		}
	}

	if want := sr.N(50 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	// Volume -1 at base 2 halves the unit sine
	if peak > 0.5+1e-9 || peak < 0.4 {
		t.Errorf("Expected peak amplitude near 0.5, got %f", peak)
	}
}

func TestCueRejectsAboveNyquist(t *testing.T) {
	c := newCue(beep.SampleRate(1000), 900, time.Millisecond)
	if _, err := c.Streamer(); err == nil {
		t.Error("Expected error for frequency above Nyquist")
	}
}

func TestNilAndUninitializedCueAreSilent(t *testing.T) {
	var c *Cue
	c.Play()
	c.Close()

	u := newCue(DefaultSampleRate, DefaultFrequency, DefaultLength)
	u.Play()
	u.Close()
}
