package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat32_Int16FullScale(t *testing.T) {
	buf := &Buffer{
		SampleRate: 16000,
		Depth:      Depth16,
		Samples:    [][]float64{{0, 16384, -16384, 32767, -32768}},
	}

	out, err := ToFloat32(buf)
	require.NoError(t, err)

	assert.Equal(t, Depth32Float, out.Depth)
	assert.Equal(t, []float64{0, 0.5, -0.5, 32767.0 / 32768.0, -1}, out.Samples[0])

	// Input untouched
	assert.Equal(t, float64(16384), buf.Samples[0][1])
}

func TestToFloat32_AllDepths(t *testing.T) {
	tests := []struct {
		depth BitDepth
		raw   float64
		want  float64
	}{
		{Depth8, 255, 127.0 / 128.0},
		{Depth8, 0, -1},
		{Depth8, 128, 0},
		{Depth16, -32768, -1},
		{Depth24, 8388607, 8388607.0 / 8388608.0},
		{Depth24, -8388608, -1},
		{Depth32, -2147483648, -1},
		{Depth32Float, 0.75, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.depth.String(), func(t *testing.T) {
			buf := &Buffer{SampleRate: 16000, Depth: tt.depth, Samples: [][]float64{{tt.raw}}}
			out, err := ToFloat32(buf)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, out.Samples[0][0], 1e-12)
		})
	}
}

func TestResample_InvalidTargetRate(t *testing.T) {
	buf := &Buffer{SampleRate: 16000, Depth: Depth32Float, Samples: [][]float64{{0.1}}}

	for _, rate := range []int{0, -1, -16000} {
		_, err := Resample(buf, rate)
		assert.ErrorIs(t, err, ErrInvalidTargetRate)
	}
}

func TestResample_IdentityCopyAtSameRate(t *testing.T) {
	samples := []float64{0.1, -0.2, 0.3, -0.4}
	buf := &Buffer{SampleRate: 16000, Depth: Depth32Float, Samples: [][]float64{samples}}

	out, err := Resample(buf, 16000)
	require.NoError(t, err)

	assert.Equal(t, samples, out.Samples[0])

	// A copy, not an alias.
	out.Samples[0][0] = 9
	assert.Equal(t, 0.1, buf.Samples[0][0])
}

func TestResample_PreservesDuration(t *testing.T) {
	tests := []struct {
		srcRate, dstRate, n int
	}{
		{44100, 16000, 44100},
		{48000, 16000, 24000},
		{8000, 16000, 8000},
		{22050, 16000, 11025},
	}

	for _, tt := range tests {
		ch := make([]float64, tt.n)
		for i := range ch {
			ch[i] = math.Sin(float64(i) / 100)
		}
		buf := &Buffer{SampleRate: tt.srcRate, Depth: Depth32Float, Samples: [][]float64{ch}}

		out, err := Resample(buf, tt.dstRate)
		require.NoError(t, err)

		srcDur := float64(tt.n) / float64(tt.srcRate)
		dstDur := float64(out.Len()) / float64(tt.dstRate)
		assert.InDelta(t, srcDur, dstDur, 1.0/float64(tt.dstRate),
			"duration must be preserved within one sample period (%d -> %d)", tt.srcRate, tt.dstRate)
	}
}

func TestResample_Deterministic(t *testing.T) {
	ch := make([]float64, 4410)
	for i := range ch {
		ch[i] = math.Sin(float64(i) / 7)
	}
	buf := &Buffer{SampleRate: 44100, Depth: Depth32Float, Samples: [][]float64{ch}}

	a, err := Resample(buf, 16000)
	require.NoError(t, err)
	b, err := Resample(buf, 16000)
	require.NoError(t, err)

	assert.Equal(t, a.Samples, b.Samples)
}

func TestResample_Upsample2xInterpolatesMidpoints(t *testing.T) {
	buf := &Buffer{SampleRate: 8000, Depth: Depth32Float, Samples: [][]float64{{0, 1, 0, -1}}}

	out, err := Resample(buf, 16000)
	require.NoError(t, err)

	require.Equal(t, 8, out.Len())
	assert.Equal(t, 0.0, out.Samples[0][0])
	assert.Equal(t, 0.5, out.Samples[0][1])
	assert.Equal(t, 1.0, out.Samples[0][2])
	assert.Equal(t, 0.5, out.Samples[0][3])
}
