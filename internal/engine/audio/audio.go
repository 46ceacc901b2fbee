// Package audio plays the scene's sound effects.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/invoker/internal/assets"
	"github.com/Faultbox/invoker/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned by Play before Init succeeds.
var ErrNotInitialized = errors.New("audio not initialized")

// Effect identifies a sound effect.
type Effect int

const (
	EffectMeteorLaunch Effect = iota
	EffectMeteorImpact
	EffectGhostWalk
)

func (e Effect) String() string {
	switch e {
	case EffectMeteorLaunch:
		return "meteor_launch"
	case EffectMeteorImpact:
		return "meteor_impact"
	case EffectGhostWalk:
		return "ghost_walk"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// EffectFiles maps each effect to its asset.
var EffectFiles = map[Effect]string{
	EffectMeteorLaunch: assets.MeteorLaunchSound,
	EffectMeteorImpact: assets.MeteorImpactSound,
	EffectGhostWalk:    assets.GhostWalkSound,
}

// Manager decodes sound effects once and mixes them on demand.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64
	muted        bool

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer
	sounds   map[Effect]*beep.Buffer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		sfxMixer:     &beep.Mixer{},
		sounds:       make(map[Effect]*beep.Buffer),
	}
}

// Init initializes the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.sfxMixer)

	m.initialized = true
	logger.Debug("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
		speaker.Close()
	}
	m.initialized = false
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// SetMuted silences every effect without changing the volume levels.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// EffectiveVolume is the linear gain applied to effects.
func (m *Manager) EffectiveVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.effectiveVolume()
}

func (m *Manager) effectiveVolume() float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * m.sfxVolLevel
}

// volumeToDb converts a 0-1 volume to the exponent used by effects.Volume with base 2.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0, vol=0.5 -> -1 (one halving)
	return math.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Load decodes WAV data into an in-memory buffer at the playback sample rate.
func (m *Manager) Load(effect Effect, data []byte) error {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode wav %s: %w", effect, err)
	}
	defer streamer.Close()

	m.mu.Lock()
	defer m.mu.Unlock()

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  m.sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(resampled)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("decode wav %s: %w", effect, err)
	}

	m.sounds[effect] = buf
	return nil
}

// LoadEffects loads every effect present under the asset root. Missing files
// are skipped and undecodable ones disable that effect with a warning.
func (m *Manager) LoadEffects(mgr *assets.Manager) int {
	loaded := 0
	for effect, name := range EffectFiles {
		if !mgr.Exists(name) {
			logger.Debug("sound effect not found", zap.String("name", name))
			continue
		}
		data, err := mgr.Load(name)
		if err == nil {
			err = m.Load(effect, data)
		}
		if err != nil {
			logger.Warn("sound effect disabled", zap.String("name", name), zap.Error(err))
			continue
		}
		loaded++
	}
	return loaded
}

// Play starts an effect. Effects that are not loaded are ignored.
func (m *Manager) Play(effect Effect) error {
	m.mu.RLock()
	initialized := m.initialized
	sfxVol := m.effectiveVolume()
	buf, ok := m.sounds[effect]
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if !ok || sfxVol <= 0 {
		return nil
	}

	volStreamer := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   volumeToDb(sfxVol),
	}

	speaker.Lock()
	m.sfxMixer.Add(volStreamer)
	speaker.Unlock()
	return nil
}
