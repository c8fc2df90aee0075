package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents the explorer's sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundInvalid
)

const sampleRate = 44100

// AudioManager synthesizes and plays the sound effects. No audio
// assets are shipped; every sound is generated at startup.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

func (am *AudioManager) generateSounds() {
	// Move: short click (wood on wood)
	am.sounds[SoundMove] = am.generateClick(440, 0.08, 0.3)

	// Capture: sharper impact
	am.sounds[SoundCapture] = am.generateClick(330, 0.12, 0.5)

	// Invalid drop: low buzz
	am.sounds[SoundInvalid] = am.generateBuzz(150, 0.1, 0.3)
}

// generateClick creates a short percussive click sound.
func (am *AudioManager) generateClick(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4) // stereo 16-bit

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		// Exponential decay envelope
		envelope := math.Exp(-t * 30)
		// Some noise for wood texture
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		sample := (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude

		writeStereoSample(data, i, sample)
	}
	return data
}

// generateBuzz creates a low error buzz.
func (am *AudioManager) generateBuzz(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := 1.0 - t/duration
		// Square-ish wave for the buzz
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		sample := wave * envelope * amplitude * 0.5

		writeStereoSample(data, i, sample)
	}
	return data
}

func writeStereoSample(data []byte, i int, sample float64) {
	val := int16(sample * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A fresh player per play lets sounds overlap
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
