package audio

import (
	"fmt"
	"math"
)

// ToMono collapses a normalized buffer into Canonical audio. A mono buffer
// passes through unchanged. Multi-channel buffers are down-mixed from exactly
// the first two channels with mono[i] = (sqrt(2) * (ch0[i] + ch1[i])) / 2,
// which preserves perceived loudness when summing two decorrelated channels.
// Channels beyond the first two are ignored rather than averaged in.
// The buffer must already be at CanonicalRate.
func ToMono(buf *Buffer) (*Canonical, error) {
	if buf.Channels() == 0 {
		return nil, ErrNoChannels
	}
	if buf.SampleRate != CanonicalRate {
		return nil, fmt.Errorf("%w: got %d Hz", ErrRateMismatch, buf.SampleRate)
	}

	if buf.Channels() == 1 {
		mono := make([]float32, len(buf.Samples[0]))
		for i, v := range buf.Samples[0] {
			mono[i] = float32(v)
		}
		return &Canonical{Samples: mono}, nil
	}

	ch0, ch1 := buf.Samples[0], buf.Samples[1]
	if len(ch0) != len(ch1) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrChannelLengthMismatch, len(ch0), len(ch1))
	}

	mono := make([]float32, len(ch0))
	for i := range ch0 {
		mono[i] = float32(math.Sqrt2 * (ch0[i] + ch1[i]) / 2)
	}

	return &Canonical{Samples: mono}, nil
}
