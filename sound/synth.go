package sound

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/glowswarm/config"
)

const (
	channels       = 2
	bytesPerSample = 2
	amplitude      = 0.3 * math.MaxInt16
)

// Synth renders a square-wave blip as 16-bit little endian stereo PCM, the
// format ebiten's audio players read. The frequency sweeps linearly toward
// EndFreq and the volume decays linearly to silence.
func Synth(sampleRate int, tone cfg.Tone) []byte {
	if sampleRate <= 0 || tone.Duration <= 0 || tone.Frequency <= 0 {
		return nil
	}
	n := int(float64(sampleRate) * tone.Duration)
	buf := make([]byte, n*channels*bytesPerSample)

	end := tone.EndFreq
	if end <= 0 {
		end = tone.Frequency
	}

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.Frequency + (end-tone.Frequency)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := amplitude * (1 - t)
		if phase >= 0.5 {
			v = -v
		}
		sample := uint16(int16(v))
		off := i * channels * bytesPerSample
		binary.LittleEndian.PutUint16(buf[off:], sample)
		binary.LittleEndian.PutUint16(buf[off+2:], sample)
	}
	return buf
}
