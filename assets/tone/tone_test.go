package tone

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAt(b []byte, i int) (l, r int16) {
	return int16(binary.LittleEndian.Uint16(b[i*4:])), int16(binary.LittleEndian.Uint16(b[i*4+2:]))
}

func TestPCMLength(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
		want int
	}{
		{"100ms", Spec{Frequency: 440, Duration: 100 * time.Millisecond, Volume: 0.5}, 4410 * 4},
		{"no duration", Spec{Frequency: 440}, 0},
		{"no frequency", Spec{Duration: time.Second}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Len(t, PCM(c.spec, 44100), c.want)
		})
	}
}

func TestPCMShape(t *testing.T) {
	b := PCM(Spec{Frequency: 441, Duration: 100 * time.Millisecond, Volume: 2}, 44100)
	require.NotEmpty(t, b)

	var peak int16
	for i := 0; i < len(b)/4; i++ {
		l, r := sampleAt(b, i)
		require.Equal(t, l, r, "channels match")
		if l > peak {
			peak = l
		}
	}
	// Volume is clamped to 1.
	assert.InDelta(t, 32767, int(peak), 50)

	first, _ := sampleAt(b, 0)
	assert.Zero(t, first)
	last, _ := sampleAt(b, len(b)/4-1)
	assert.Less(t, abs(int(last)), 500, "tail fades out")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
