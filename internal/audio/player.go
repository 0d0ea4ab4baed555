// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/core"
)

// ErrNoSpeaker is returned by Initialize when no audio device can be opened.
var ErrNoSpeaker = errors.New("audio: no speaker available")

// Player implements core.SoundPlayer with pre-rendered cue buffers and a
// single mixer fed to the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[core.Cue]*beep.Buffer
	volume      float64
	enabled     bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer prepares every cue buffer. Assets that fail to load are logged
// and replaced by synthesized tones. The speaker is not opened until
// Initialize.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		mixer:   &beep.Mixer{},
		buffers: make(map[core.Cue]*beep.Buffer),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}
	if !p.enabled {
		return p
	}

	for _, c := range core.AllCues() {
		buf, fromFile, err := buildCue(cfg.SoundsDir, c)
		if err != nil {
			logger.Warn("sound asset unusable, using tone", "cue", c, "error", err)
		}
		if buf == nil {
			continue
		}
		p.buffers[c] = buf
		logger.Debug("sound ready", "cue", c, "file", fromFile, "samples", buf.Len())
	}
	return p
}

// Initialize opens the speaker. On failure the player stays silent and
// Play becomes a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoSpeaker, err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts c without waiting for it to finish. Overlapping cues mix.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf, ok := p.buffers[c]
	if !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(newVolume(buf.Streamer(0, buf.Len()), p.volume))
	speaker.Unlock()
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// newVolume scales s linearly by vol. Zero or negative is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

var _ core.SoundPlayer = (*Player)(nil)
