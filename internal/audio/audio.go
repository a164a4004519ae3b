package audio

import "time"

// CanonicalRate is the sample rate in Hz required by the speech-recognition
// engine. The normalization pipeline always converges on it.
const CanonicalRate = 16000

// BitDepth identifies the sample encoding of a decoded buffer.
type BitDepth uint8

const (
	Depth8 BitDepth = iota
	Depth16
	Depth24
	Depth32
	Depth32Float
)

// String returns the conventional name of the bit depth.
func (d BitDepth) String() string {
	switch d {
	case Depth8:
		return "8"
	case Depth16:
		return "16"
	case Depth24:
		return "24"
	case Depth32:
		return "32"
	case Depth32Float:
		return "32f"
	}
	return "unknown"
}

// Buffer is a decoded, de-interleaved audio signal. Samples holds one slice
// per channel; all channel slices have equal length. Values are raw sample
// amplitudes until ToFloat32 normalizes them into [-1, 1].
type Buffer struct {
	SampleRate int
	Depth      BitDepth
	Samples    [][]float64
}

// Channels returns the channel count.
func (b *Buffer) Channels() int {
	return len(b.Samples)
}

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.Samples) == 0 {
		return 0
	}
	return len(b.Samples[0])
}

// Duration returns the playback duration of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.Len()) / float64(b.SampleRate) * float64(time.Second))
}

// Canonical is the pipeline's terminal format: mono float32 samples in
// [-1, 1] at CanonicalRate. It is immutable once produced.
type Canonical struct {
	Samples []float32
}

// SampleRate returns the fixed canonical sample rate.
func (c *Canonical) SampleRate() int {
	return CanonicalRate
}

// Duration returns the playback duration of the canonical audio.
func (c *Canonical) Duration() time.Duration {
	return time.Duration(float64(len(c.Samples)) / CanonicalRate * float64(time.Second))
}
