package main

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/herorun/hero"
)

func TestParseScript(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		frames  int
		wantErr bool
	}{
		{"repeat defaults to one", "steps:\n  - {}\n  - {right: true, repeat: 3}\n", 4, false},
		{"level and respawn", "level: level-1\nauto_respawn: true\nsteps:\n  - {repeat: 2}\n", 2, false},
		{"empty", "steps: []\n", 0, true},
		{"negative repeat", "steps:\n  - {repeat: -1}\n", 0, true},
		{"bad yaml", "steps: [", 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := ParseScript([]byte(c.data))
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, s.Frames(), c.frames)
		})
	}
}

func TestFramesPressOnlyOnFirstRepeat(t *testing.T) {
	s := &Script{Steps: []Step{{Pressed: true, Repeat: 3}}}
	frames := s.Frames()
	require.Len(t, frames, 3)
	assert.Equal(t, hero.Controls{Jump: true, JumpPressed: true}, frames[0])
	assert.Equal(t, hero.Controls{Jump: true}, frames[1])
	assert.Equal(t, hero.Controls{Jump: true}, frames[2])
}

func TestReplayIdlesAfterScript(t *testing.T) {
	r := &replay{frames: []hero.Controls{{Left: true}}}
	assert.True(t, r.Controls().Left)
	assert.Equal(t, hero.Controls{}, r.Controls())
}

func TestRunJumpScript(t *testing.T) {
	script, err := ParseScript([]byte(`
steps:
  - {repeat: 30}
  - {pressed: true, repeat: 6}
  - {pressed: true, repeat: 4}
  - {repeat: 120}
`))
	require.NoError(t, err)
	log, _ := test.NewNullLogger()

	var out bytes.Buffer
	sum, err := Run(script, Options{
		Level:  "level-1",
		Strict: true,
		DT:     1.0 / 60,
		ViewW:  640,
		ViewH:  480,
		Log:    log,
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, 160, sum.Frames)
	assert.Equal(t, 1, sum.Lives)
	assert.Equal(t, 1, sum.Jumps)
	assert.Equal(t, 1, sum.Flips)
	assert.Equal(t, "standing", sum.Move)
	assert.Equal(t, "idle", sum.Anim)

	text := out.String()
	assert.Contains(t, text, "   31 movement  jump\n")
	assert.Contains(t, text, "   31 event     jumped\n")
	assert.Contains(t, text, "   37 movement  flip\n")
	assert.Contains(t, text, "event     doubleJumped")
	assert.Contains(t, text, "movement  touchdown")
}

func TestRunUnknownLevel(t *testing.T) {
	script := &Script{Steps: []Step{{}}}
	log, _ := test.NewNullLogger()
	_, err := Run(script, Options{Level: "nope", DT: 1.0 / 60, ViewW: 640, ViewH: 480, Log: log}, &bytes.Buffer{})
	assert.Error(t, err)
}
