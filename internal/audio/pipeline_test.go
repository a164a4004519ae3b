package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Mono16kPCM16IsExactDivision(t *testing.T) {
	raw := []int{0, 1, -1, 1000, -1000, 32767, -32768}
	data := encodePCM16(t, CanonicalRate, 1, raw)

	canonical, err := Normalize(data)
	require.NoError(t, err)

	require.Len(t, canonical.Samples, len(raw))
	for i, v := range raw {
		assert.Equal(t, float32(float64(v)/32768), canonical.Samples[i], "sample %d", i)
	}
}

func TestNormalize_IdempotentOnCanonicalInput(t *testing.T) {
	samples := []float32{0, 0.25, -0.25, 0.999, -1}
	data := encodeFloat32(CanonicalRate, 1, samples)

	canonical, err := Normalize(data)
	require.NoError(t, err)
	assert.Equal(t, samples, canonical.Samples)

	// Run it again on its own serialization: bit-identical output.
	again, err := Normalize(encodeFloat32(CanonicalRate, 1, canonical.Samples))
	require.NoError(t, err)
	assert.Equal(t, canonical.Samples, again.Samples)
}

func TestNormalize_Stereo44k1EndsMonoAt16k(t *testing.T) {
	// Half a second of 44.1 kHz stereo.
	const frames = 22050
	interleaved := make([]int, frames*2)
	for f := 0; f < frames; f++ {
		v := int(10000 * math.Sin(2*math.Pi*440*float64(f)/44100))
		interleaved[f*2] = v
		interleaved[f*2+1] = v / 2
	}
	data := encodePCM16(t, 44100, 2, interleaved)

	canonical, err := Normalize(data)
	require.NoError(t, err)

	wantLen := frames * CanonicalRate / 44100
	assert.InDelta(t, wantLen, len(canonical.Samples), 1,
		"output length must match original duration at 16 kHz")

	for i, s := range canonical.Samples {
		require.LessOrEqual(t, float64(s), 1.0, "sample %d out of range", i)
		require.GreaterOrEqual(t, float64(s), -1.0, "sample %d out of range", i)
	}
}

func TestNormalize_FailsFastOnGarbage(t *testing.T) {
	_, err := Normalize([]byte("mp3 or worse"))
	assert.ErrorIs(t, err, ErrMalformedContainer)
}
