package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stress-bomb/core"
)

// ErrAudioUnavailable is returned when no output device could be opened
var ErrAudioUnavailable = errors.New("audio output unavailable")

// Player renders simulation cues to the speaker
// A Player without a device stays usable and drops every cue
type Player struct {
	mu     sync.Mutex
	cfg    *Config
	cache  *cueCache
	mixer  *beep.Mixer
	live   bool
	last   [core.SoundTypeCount]time.Time
	played [core.SoundTypeCount]int
	now    func() time.Time
}

// NewPlayer opens the speaker and pre-renders all cues
// On device failure it returns a silent player alongside an error wrapping ErrAudioUnavailable
func NewPlayer(cfg *Config) (*Player, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := newSilentPlayer(cfg)
	if !cfg.Enabled {
		return p, nil
	}

	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return p, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	p.cache = newCueCache(cfg)
	speaker.Play(p.mixer)
	p.live = true
	log.Printf("audio: speaker ready at %d Hz", cfg.SampleRate)
	return p, nil
}

// NewSilentPlayer returns a player that never touches the device
func NewSilentPlayer() *Player {
	return newSilentPlayer(DefaultConfig())
}

func newSilentPlayer(cfg *Config) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Live reports whether cues reach a device
func (p *Player) Live() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

// Play queues a cue on the mixer; fire-and-forget
func (p *Player) Play(sound core.SoundType) {
	if !p.admit(sound) {
		return
	}

	s := p.cache.streamer(sound)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// admit applies the per-cue repeat gap and counts accepted cues
func (p *Player) admit(sound core.SoundType) bool {
	if sound < 0 || sound >= core.SoundTypeCount {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live || p.cache == nil {
		return false
	}
	now := p.now()
	if last := p.last[sound]; !last.IsZero() && now.Sub(last) < p.cfg.MinSoundGap {
		return false
	}
	p.last[sound] = now
	p.played[sound]++
	return true
}

// Played returns how many times a cue was accepted for playback
func (p *Player) Played(sound core.SoundType) int {
	if sound < 0 || sound >= core.SoundTypeCount {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[sound]
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	speaker.Close()
	p.live = false
}
