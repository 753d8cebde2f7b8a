// Package tone synthesises the short beeps used as sound effects.
package tone

import (
	"encoding/binary"
	"math"
	"time"
)

// Spec describes one beep.
type Spec struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64
}

// fadeShare is the tail of the beep that fades out linearly.
const fadeShare = 0.3

// PCM renders s as signed 16-bit little-endian stereo at sampleRate.
// A zero or negative duration or frequency yields no samples.
func PCM(s Spec, sampleRate int) []byte {
	if s.Duration <= 0 || s.Frequency <= 0 || sampleRate <= 0 {
		return nil
	}
	n := int(s.Duration.Seconds() * float64(sampleRate))
	vol := math.Max(0, math.Min(s.Volume, 1))
	fadeFrom := int(float64(n) * (1 - fadeShare))

	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := vol
		if i >= fadeFrom && n > fadeFrom {
			amp *= float64(n-i) / float64(n-fadeFrom)
		}
		v := amp * math.Sin(2*math.Pi*s.Frequency*float64(i)/float64(sampleRate))
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], sample)
		binary.LittleEndian.PutUint16(out[i*4+2:], sample)
	}
	return out
}
