//go:build !tinygo

package hal

import "time"

const (
	toneSampleRate = 44100
	toneAmplitude  = 0x1800
)

// squareWave renders a tone as 16-bit little-endian stereo PCM.
func squareWave(hz uint32, d time.Duration, sampleRate int) []byte {
	if hz == 0 || d <= 0 || sampleRate <= 0 {
		return nil
	}
	n := int(int64(d) * int64(sampleRate) / int64(time.Second))
	half := sampleRate / int(2*hz)
	if half <= 0 {
		half = 1
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		s := int16(toneAmplitude)
		if (i/half)%2 == 1 {
			s = -s
		}
		j := i * 4
		buf[j+0] = byte(s)
		buf[j+1] = byte(s >> 8)
		buf[j+2] = byte(s)
		buf[j+3] = byte(s >> 8)
	}
	return buf
}
