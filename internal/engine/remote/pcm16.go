package remote

import (
	"encoding/binary"

	"github.com/Adiwanwade/aurora/internal/audio"
)

// encodeWAV16 serializes canonical audio as a mono 16-bit PCM WAV at the
// canonical rate, the interchange format inference servers accept.
func encodeWAV16(c *audio.Canonical) []byte {
	const (
		numChannels   = 1
		bitsPerSample = 16
	)

	sampleRate := uint32(c.SampleRate())
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := uint16(numChannels * bitsPerSample / 8)
	dataSize := uint32(len(c.Samples) * 2)

	out := make([]byte, 44+len(c.Samples)*2)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], 36+dataSize)
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], numChannels)
	binary.LittleEndian.PutUint32(out[24:28], sampleRate)
	binary.LittleEndian.PutUint32(out[28:32], byteRate)
	binary.LittleEndian.PutUint16(out[32:34], blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], dataSize)

	for i, s := range c.Samples {
		binary.LittleEndian.PutUint16(out[44+i*2:], uint16(float32ToInt16(s)))
	}

	return out
}

// float32ToInt16 clamps and scales one sample. 32767 is used for positive
// full scale to avoid overflow.
func float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
