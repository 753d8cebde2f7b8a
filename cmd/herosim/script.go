package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/herorun/hero"
)

var ErrEmptyScript = errors.New("herosim: script has no frames")

// Script is a recorded input sequence replayed one step per frame.
type Script struct {
	Level       string `yaml:"level"`
	AutoRespawn bool   `yaml:"auto_respawn"`
	Steps       []Step `yaml:"steps"`
}

// Step holds the controls for Repeat consecutive frames. Pressed marks the
// jump edge and only applies to the first of them.
type Step struct {
	Left    bool `yaml:"left"`
	Right   bool `yaml:"right"`
	Jump    bool `yaml:"jump"`
	Pressed bool `yaml:"pressed"`
	Restart bool `yaml:"restart"`
	Repeat  int  `yaml:"repeat"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("herosim: read %s: %w", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("herosim: parse script: %w", err)
	}
	for i, st := range s.Steps {
		if st.Repeat < 0 {
			return nil, fmt.Errorf("herosim: step %d: negative repeat %d", i, st.Repeat)
		}
	}
	if len(s.Frames()) == 0 {
		return nil, ErrEmptyScript
	}
	return &s, nil
}

// Frames expands the steps into per-frame controls.
func (s *Script) Frames() []hero.Controls {
	var out []hero.Controls
	for _, st := range s.Steps {
		n := st.Repeat
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			out = append(out, hero.Controls{
				Left:        st.Left,
				Right:       st.Right,
				Jump:        st.Jump || st.Pressed,
				JumpPressed: st.Pressed && i == 0,
				Restart:     st.Restart,
			})
		}
	}
	return out
}

// replay feeds frames to the input system in order, then idles.
type replay struct {
	frames []hero.Controls
	next   int
}

func (r *replay) Controls() hero.Controls {
	if r.next >= len(r.frames) {
		return hero.Controls{}
	}
	c := r.frames[r.next]
	r.next++
	return c
}
