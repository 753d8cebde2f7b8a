// Package assets owns the audio context and the hero's sound effects.
package assets

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/herorun/assets/tone"
	"github.com/milk9111/herorun/prefabs"
)

const sampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Context returns the process audio context, creating it on first use.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// ToneBank plays a generated beep per hero event name.
type ToneBank struct {
	players map[string]*audio.Player
	log     logrus.FieldLogger
}

// NewToneBank renders every tone in sounds.
func NewToneBank(sounds map[string]prefabs.ToneSpec, log logrus.FieldLogger) (*ToneBank, error) {
	ctx := Context()
	b := &ToneBank{players: make(map[string]*audio.Player, len(sounds)), log: log}

	names := make([]string, 0, len(sounds))
	for name := range sounds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := sounds[name]
		pcm := tone.PCM(tone.Spec{
			Frequency: s.Frequency,
			Duration:  time.Duration(s.DurationMS) * time.Millisecond,
			Volume:    s.Volume,
		}, ctx.SampleRate())
		if len(pcm) == 0 {
			return nil, fmt.Errorf("assets: tone %q is empty", name)
		}
		b.players[name] = ctx.NewPlayerFromBytes(pcm)
	}
	return b, nil
}

// Play restarts the named tone. Unknown names are logged and ignored.
func (b *ToneBank) Play(name string) {
	p, ok := b.players[name]
	if !ok {
		if b.log != nil {
			b.log.WithField("sound", name).Debug("no tone for event")
		}
		return
	}
	if err := p.Rewind(); err != nil && b.log != nil {
		b.log.WithError(err).WithField("sound", name).Warn("rewind tone")
	}
	p.Play()
}

// Close releases every player.
func (b *ToneBank) Close() error {
	var first error
	for _, p := range b.players {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
