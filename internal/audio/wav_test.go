package audio

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePCM16 builds a 16-bit PCM WAV fixture with the go-audio encoder.
// samples is interleaved.
func encodePCM16(t *testing.T, sampleRate, channels int, samples []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	err = enc.Write(&gaudio.IntBuffer{
		Data:           samples,
		Format:         &gaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
	})
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

// encodeFloat32 builds an IEEE-float WAV fixture by hand; the go-audio
// encoder only writes integer PCM.
func encodeFloat32(sampleRate, channels int, samples []float32) []byte {
	dataSize := len(samples) * 4
	out := make([]byte, 44+dataSize)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 3) // IEEE float
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*channels*4))
	binary.LittleEndian.PutUint16(out[32:34], uint16(channels*4))
	binary.LittleEndian.PutUint16(out[34:36], 32)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))

	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}

	return out
}

func TestDecodeWAV_PCM16Mono(t *testing.T) {
	data := encodePCM16(t, 16000, 1, []int{0, 100, -100, 32767, -32768})

	buf, err := DecodeWAV(data)
	require.NoError(t, err)

	assert.Equal(t, 16000, buf.SampleRate)
	assert.Equal(t, Depth16, buf.Depth)
	assert.Equal(t, 1, buf.Channels())
	assert.Equal(t, []float64{0, 100, -100, 32767, -32768}, buf.Samples[0])
}

func TestDecodeWAV_PCM16StereoDeinterleaves(t *testing.T) {
	// Interleaved L R L R L R
	data := encodePCM16(t, 44100, 2, []int{1, -1, 2, -2, 3, -3})

	buf, err := DecodeWAV(data)
	require.NoError(t, err)

	assert.Equal(t, 2, buf.Channels())
	assert.Equal(t, []float64{1, 2, 3}, buf.Samples[0])
	assert.Equal(t, []float64{-1, -2, -3}, buf.Samples[1])
}

func TestDecodeWAV_Float32(t *testing.T) {
	data := encodeFloat32(16000, 1, []float32{0, 0.5, -0.5, 1, -1})

	buf, err := DecodeWAV(data)
	require.NoError(t, err)

	assert.Equal(t, Depth32Float, buf.Depth)
	assert.Equal(t, []float64{0, 0.5, -0.5, 1, -1}, buf.Samples[0])
}

func TestDecodeWAV_Malformed(t *testing.T) {
	valid := encodePCM16(t, 16000, 1, []int{1, 2, 3, 4})

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", []byte("RIFF")},
		{"not riff", []byte("this is definitely not a wav file at all")},
		{"truncated mid-chunk", valid[:len(valid)-3]},
		{"no chunks", valid[:12]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := DecodeWAV(tt.data)
			assert.ErrorIs(t, err, ErrMalformedContainer)
			assert.Nil(t, buf, "no partial buffer on decode failure")
		})
	}
}

func TestDecodeWAV_UnsupportedEncoding(t *testing.T) {
	// Rewrite the fmt chunk of a valid file to claim mu-law (format 7).
	data := encodePCM16(t, 16000, 1, []int{1, 2, 3, 4})
	binary.LittleEndian.PutUint16(data[20:22], 7)

	_, err := DecodeWAV(data)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	// 12-bit PCM is equally out.
	data = encodePCM16(t, 16000, 1, []int{1, 2, 3, 4})
	binary.LittleEndian.PutUint16(data[34:36], 12)

	_, err = DecodeWAV(data)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestDecodeWAV_SkipsExtraChunks(t *testing.T) {
	base := encodeFloat32(16000, 1, []float32{0.25, -0.25})

	// Splice a LIST chunk between the fmt and data chunks.
	withList := make([]byte, 0, len(base)+12)
	withList = append(withList, base[:36]...)
	withList = append(withList, []byte("LIST")...)
	withList = append(withList, 4, 0, 0, 0)
	withList = append(withList, []byte("INFO")...)
	withList = append(withList, base[36:]...)
	binary.LittleEndian.PutUint32(withList[4:8], uint32(len(withList)-8))

	buf, err := DecodeWAV(withList)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, -0.25}, buf.Samples[0])
}
