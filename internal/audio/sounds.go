package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/math-breakout/internal/core"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// tone is one synthesized note.
type tone struct {
	freq      float64
	duration  time.Duration
	amplitude float64
}

// fallbackTone is played for cues with no asset on disk.
const (
	fallbackFreq     = 440
	fallbackDuration = time.Second
)

// synthesized describes the tones each cue falls back to.
var synthesized = map[core.Cue][]tone{
	core.CueBrickHit:    {{fallbackFreq, fallbackDuration, 0.5}},
	core.CueWrongAnswer: {{fallbackFreq, fallbackDuration, 0.25}},
	core.CueGameOver:    {{fallbackFreq, fallbackDuration, 0.125}},
	core.CueLevelComplete: {
		{523.25, 120 * time.Millisecond, 0.3},
		{659.25, 120 * time.Millisecond, 0.3},
		{783.99, 240 * time.Millisecond, 0.3},
	},
	core.CueMenuMove:   {{880, 40 * time.Millisecond, 0.2}},
	core.CueMenuSelect: {{660, 80 * time.Millisecond, 0.25}},
}

// buildCue returns the samples for c, read from dir/<cue>.wav when present
// and synthesized otherwise. fromFile reports which one was used.
func buildCue(dir string, c core.Cue) (buf *beep.Buffer, fromFile bool, err error) {
	if dir != "" {
		path := filepath.Join(dir, c.String()+".wav")
		buf, err = loadWAV(path)
		if err == nil {
			return buf, true, nil
		}
		if !os.IsNotExist(err) {
			err = fmt.Errorf("audio: %s: %w", path, err)
		} else {
			err = nil
		}
	}

	synth, synthErr := synthesize(synthesized[c])
	if synthErr != nil {
		return nil, false, synthErr
	}
	return synth, false, err
}

// loadWAV decodes a WAV file into a buffer at the player's sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stream, fileFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, stream)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// synthesize renders tones back to back into a buffer.
func synthesize(tones []tone) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot synthesize %.0f Hz: %w", t.freq, err)
		}
		buf.Append(&effects.Gain{
			Streamer: beep.Take(sampleRate.N(t.duration), sine),
			Gain:     t.amplitude - 1,
		})
	}
	return buf, nil
}
