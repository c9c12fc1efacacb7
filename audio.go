package presskit

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundHandle identifies a sound loaded into an Audio. NoSound plays nothing.
type SoundHandle uint32

// NoSound is the zero handle.
const NoSound SoundHandle = 0

// Audio is the sound subsystem used for button cues.
type Audio interface {
	// BindListener attaches the listener to the viewer and loads the press
	// and release cues. It is called at most once per backend per process.
	BindListener() (press, release SoundHandle, err error)
	// PlayOnce starts a one-shot playback. NoSound is a no-op.
	PlayOnce(h SoundHandle)
}

// bindState is the one-shot audio binding state.
type bindState uint8

const (
	bindUninitialized bindState = iota
	bindBound
	bindFailed
)

// audioBinding binds the scene's press/release cues exactly once, the first
// frame both an Audio and an active session are available.
type audioBinding struct {
	state   bindState
	press   SoundHandle
	release SoundHandle
}

// listenerBindings holds one binding per audio backend for the life of the
// process. Scenes sharing a backend share its binding.
var listenerBindings = struct {
	sync.Mutex
	m map[Audio]*audioBinding
}{m: make(map[Audio]*audioBinding)}

// sharedBinding returns the process-wide binding for a, or nil when a cannot
// be used as a map key.
func sharedBinding(a Audio) *audioBinding {
	if a == nil || !reflect.TypeOf(a).Comparable() {
		return nil
	}
	listenerBindings.Lock()
	defer listenerBindings.Unlock()
	b, ok := listenerBindings.m[a]
	if !ok {
		b = &audioBinding{}
		listenerBindings.m[a] = b
	}
	return b
}

// advance attempts the binding. It returns true only on the frame the
// binding transitions to bindBound.
func (b *audioBinding) advance(f *Frame) bool {
	if b.state != bindUninitialized {
		return false
	}
	if f.Audio == nil || f.Session == nil || !f.Session.IsActive() {
		return false
	}
	press, release, err := f.Audio.BindListener()
	if err != nil {
		b.state = bindFailed
		f.Logger.Warn("audio bind failed, buttons will be silent", "err", err)
		return false
	}
	b.state = bindBound
	b.press, b.release = press, release
	f.Logger.Debug("audio bound", "press", press, "release", release)
	return true
}

// playOnce plays h when it is a real handle.
func playOnce(a Audio, h SoundHandle) {
	if a == nil || h == NoSound {
		return
	}
	a.PlayOnce(h)
}

// --- ebiten backend ---

const (
	defaultSampleRate = 48000
	pressToneHz       = 1320
	releaseToneHz     = 880
	clickDuration     = 45 * time.Millisecond
)

// EbitenAudio plays synthesized click cues through ebiten's audio context.
type EbitenAudio struct {
	sampleRate int
	ctx        *audio.Context
	clips      [][]byte
	active     []*audio.Player
	volume     float64
}

// NewEbitenAudio creates an audio backend. The ebiten audio context is
// created lazily in BindListener so that constructing the backend never
// touches the audio device.
func NewEbitenAudio(sampleRate int, volume float64) *EbitenAudio {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	return &EbitenAudio{sampleRate: sampleRate, volume: volume}
}

// BindListener creates (or reuses) the audio context and loads the cues.
func (a *EbitenAudio) BindListener() (SoundHandle, SoundHandle, error) {
	if a.ctx == nil {
		if cur := audio.CurrentContext(); cur != nil {
			if cur.SampleRate() != a.sampleRate {
				return NoSound, NoSound, fmt.Errorf("audio context sample rate %d, want %d", cur.SampleRate(), a.sampleRate)
			}
			a.ctx = cur
		} else {
			a.ctx = audio.NewContext(a.sampleRate)
		}
	}
	press, err := a.Load(synthClick(a.sampleRate, pressToneHz, clickDuration))
	if err != nil {
		return NoSound, NoSound, fmt.Errorf("load press cue: %w", err)
	}
	release, err := a.Load(synthClick(a.sampleRate, releaseToneHz, clickDuration))
	if err != nil {
		return NoSound, NoSound, fmt.Errorf("load release cue: %w", err)
	}
	return press, release, nil
}

// Load registers a 16-bit little-endian stereo PCM clip and returns its handle.
func (a *EbitenAudio) Load(pcm []byte) (SoundHandle, error) {
	if len(pcm) == 0 || len(pcm)%4 != 0 {
		return NoSound, fmt.Errorf("pcm length %d is not whole stereo frames", len(pcm))
	}
	a.clips = append(a.clips, pcm)
	return SoundHandle(len(a.clips)), nil
}

// PlayOnce starts a new player for the clip. Finished players are closed on
// later calls.
func (a *EbitenAudio) PlayOnce(h SoundHandle) {
	if a.ctx == nil || h == NoSound || int(h) > len(a.clips) {
		return
	}
	a.reap()
	p := a.ctx.NewPlayerFromBytes(a.clips[h-1])
	p.SetVolume(a.volume)
	p.Play()
	a.active = append(a.active, p)
}

// reap closes players that have finished.
func (a *EbitenAudio) reap() {
	live := a.active[:0]
	for _, p := range a.active {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(live); i < len(a.active); i++ {
		a.active[i] = nil
	}
	a.active = live
}

// clickGenerator is a decaying sine burst.
type clickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *clickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 60)
		v := math.Sin(2*math.Pi*g.freq*t) * env * 0.6
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *clickGenerator) Err() error { return nil }

// synthClick renders a click cue of the given pitch and length to 16-bit
// little-endian stereo PCM.
func synthClick(sampleRate int, freq float64, d time.Duration) []byte {
	sr := beep.SampleRate(sampleRate)
	s := beep.Take(sr.N(d), &clickGenerator{sr: sr, freq: freq})

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, ch := range frame {
				v := int16(math.Max(-1, math.Min(1, ch)) * math.MaxInt16)
				out = binary.LittleEndian.AppendUint16(out, uint16(v))
			}
		}
		if !ok || n < len(buf) {
			break
		}
	}
	return out
}
