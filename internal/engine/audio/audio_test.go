package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"

	"github.com/Faultbox/invoker/internal/assets"
)

// encodeWAV writes a short silent mono clip and returns its bytes.
func encodeWAV(t *testing.T, rate beep.SampleRate, samples int) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Silence(samples), format); err != nil {
		f.Close()
		t.Fatalf("wav.Encode: %v", err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestVolumeToDb(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -100},
		{-1, -100},
	}
	for _, tt := range tests {
		if got := volumeToDb(tt.vol); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("volumeToDb(%v) = %v, want %v", tt.vol, got, tt.want)
		}
	}
}

func TestVolumeSettings(t *testing.T) {
	m := New()
	m.SetMasterVolume(1.5)
	m.SetSFXVolume(-0.2)
	if m.masterVolume != 1 || m.sfxVolLevel != 0 {
		t.Errorf("volumes = %v, %v, want clamped to 1, 0", m.masterVolume, m.sfxVolLevel)
	}

	m.SetMasterVolume(0.8)
	m.SetSFXVolume(0.5)
	if got := m.EffectiveVolume(); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("EffectiveVolume() = %v, want 0.4", got)
	}

	m.SetMuted(true)
	if got := m.EffectiveVolume(); got != 0 {
		t.Errorf("muted EffectiveVolume() = %v", got)
	}
	if m.masterVolume != 0.8 {
		t.Error("muting changed the master volume")
	}
}

func TestLoadResamples(t *testing.T) {
	m := New()
	data := encodeWAV(t, 22050, 2205)
	if err := m.Load(EffectGhostWalk, data); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	buf, ok := m.sounds[EffectGhostWalk]
	if !ok {
		t.Fatal("effect not loaded")
	}
	if buf.Format().SampleRate != DefaultSampleRate {
		t.Errorf("buffer rate = %v, want %v", buf.Format().SampleRate, DefaultSampleRate)
	}
	// 0.1 s of audio at the playback rate, allowing for resampler edges.
	if n := buf.Len(); n < 4000 || n > 4500 {
		t.Errorf("buffer length = %d, want about 4410", n)
	}
}

func TestLoadInvalidData(t *testing.T) {
	m := New()
	if err := m.Load(EffectMeteorLaunch, []byte("not a wav file")); err == nil {
		t.Fatal("Load() succeeded on garbage")
	}
	if _, ok := m.sounds[EffectMeteorLaunch]; ok {
		t.Error("failed load registered the effect")
	}
}

func TestLoadEffectsSkipsMissingAndBroken(t *testing.T) {
	root := t.TempDir()
	write := func(name string, data []byte) {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(assets.MeteorLaunchSound, encodeWAV(t, DefaultSampleRate, 100))
	write(assets.MeteorImpactSound, []byte("broken"))

	m := New()
	if n := m.LoadEffects(assets.NewManager(root)); n != 1 {
		t.Errorf("LoadEffects() = %d, want 1", n)
	}
	if _, ok := m.sounds[EffectMeteorLaunch]; !ok {
		t.Error("launch sound not loaded")
	}
	if len(m.sounds) != 1 {
		t.Error("broken or missing sound registered")
	}
}

func TestPlayBeforeInit(t *testing.T) {
	m := New()
	if err := m.Play(EffectGhostWalk); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Play() error = %v, want ErrNotInitialized", err)
	}
}

func TestEffectString(t *testing.T) {
	if EffectMeteorImpact.String() != "meteor_impact" {
		t.Errorf("String() = %s", EffectMeteorImpact)
	}
	for e, name := range EffectFiles {
		if name == "" {
			t.Errorf("%s has no file", e)
		}
	}
}
