package sound

import (
	"github.com/gopxl/beep"
	"github.com/meghashyamc/pong2d/game"
)

// pcmFormat is 16-bit little endian stereo, what ebiten's audio players expect.
func pcmFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// EncodePCM drains s into signed 16-bit little endian stereo bytes.
func EncodePCM(s beep.Streamer, rate beep.SampleRate) []byte {
	format := pcmFormat(rate)
	frame := format.Width()

	var out []byte
	samples := make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		start := len(out)
		out = append(out, make([]byte, n*frame)...)
		for i, sample := range samples[:n] {
			format.EncodeSigned(out[start+i*frame:], sample)
		}
		if !ok {
			break
		}
	}
	return out
}

// Buffer renders a cue into memory so it can be replayed without synthesizing again.
func Buffer(cue game.Cue, rate beep.SampleRate, volume float64) (*beep.Buffer, error) {
	s, err := Synthesize(cue, rate, volume)
	if err != nil {
		return nil, err
	}
	buffer := beep.NewBuffer(pcmFormat(rate))
	buffer.Append(s)
	return buffer, nil
}
