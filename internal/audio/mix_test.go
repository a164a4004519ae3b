package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMono_Passthrough(t *testing.T) {
	buf := &Buffer{
		SampleRate: CanonicalRate,
		Depth:      Depth32Float,
		Samples:    [][]float64{{0.1, -0.2, 0.3}},
	}

	mono, err := ToMono(buf)
	require.NoError(t, err)

	assert.Equal(t, []float32{0.1, -0.2, 0.3}, mono.Samples)
	assert.Equal(t, CanonicalRate, mono.SampleRate())
}

func TestToMono_StereoScaling(t *testing.T) {
	ch0 := []float64{0.1, -0.5, 0.9, 0}
	ch1 := []float64{0.3, 0.5, -0.1, 0}
	buf := &Buffer{
		SampleRate: CanonicalRate,
		Depth:      Depth32Float,
		Samples:    [][]float64{ch0, ch1},
	}

	mono, err := ToMono(buf)
	require.NoError(t, err)

	require.Len(t, mono.Samples, len(ch0))
	for i := range ch0 {
		want := float32(math.Sqrt2 * (ch0[i] + ch1[i]) / 2)
		assert.Equal(t, want, mono.Samples[i], "sample %d", i)
	}
}

func TestToMono_IgnoresChannelsBeyondTwo(t *testing.T) {
	// The mixdown reads exactly the first two channels, even for quad.
	buf := &Buffer{
		SampleRate: CanonicalRate,
		Depth:      Depth32Float,
		Samples: [][]float64{
			{0.2, 0.4},
			{0.6, 0.8},
			{99, 99},
			{-99, -99},
		},
	}

	mono, err := ToMono(buf)
	require.NoError(t, err)

	for i := range mono.Samples {
		want := float32(math.Sqrt2 * (buf.Samples[0][i] + buf.Samples[1][i]) / 2)
		assert.Equal(t, want, mono.Samples[i])
	}
}

func TestToMono_RateMismatch(t *testing.T) {
	buf := &Buffer{
		SampleRate: 44100,
		Depth:      Depth32Float,
		Samples:    [][]float64{{0.1}},
	}

	_, err := ToMono(buf)
	assert.ErrorIs(t, err, ErrRateMismatch)
}

func TestToMono_ChannelLengthMismatch(t *testing.T) {
	buf := &Buffer{
		SampleRate: CanonicalRate,
		Depth:      Depth32Float,
		Samples:    [][]float64{{0.1, 0.2}, {0.1}},
	}

	_, err := ToMono(buf)
	assert.ErrorIs(t, err, ErrChannelLengthMismatch)
}

func TestToMono_NoChannels(t *testing.T) {
	buf := &Buffer{SampleRate: CanonicalRate, Depth: Depth32Float}

	_, err := ToMono(buf)
	assert.ErrorIs(t, err, ErrNoChannels)
}
