package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)

// DecodeWAV parses a RIFF/WAVE byte buffer into a de-interleaved Buffer.
// It scans the chunk list for the fmt and data chunks, so containers with
// extra chunks (LIST, fact, cue) decode fine. Supported sample encodings are
// integer PCM at 8/16/24/32 bits and IEEE float at 32 bits; anything else
// fails with ErrUnsupportedEncoding. Truncated or non-WAV input fails with
// ErrMalformedContainer.
func DecodeWAV(data []byte) (*Buffer, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("%w: %d bytes is too short for a RIFF header", ErrMalformedContainer, len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: missing RIFF/WAVE markers", ErrMalformedContainer)
	}

	var (
		haveFmt       bool
		audioFormat   uint16
		channels      int
		sampleRate    int
		bitsPerSample int
		sampleData    []byte
	)

	// Walk the chunk list after the 12-byte RIFF header.
	off := 12
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8

		if size < 0 || body+size > len(data) {
			return nil, fmt.Errorf("%w: chunk %q overruns buffer", ErrMalformedContainer, id)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: fmt chunk is %d bytes", ErrMalformedContainer, size)
			}
			audioFormat = binary.LittleEndian.Uint16(data[body : body+2])
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			haveFmt = true
		case "data":
			sampleData = data[body : body+size]
		}

		// Chunks are word-aligned; odd sizes carry a pad byte.
		off = body + size
		if size%2 == 1 {
			off++
		}
	}

	if !haveFmt {
		return nil, fmt.Errorf("%w: no fmt chunk", ErrMalformedContainer)
	}
	if sampleData == nil {
		return nil, fmt.Errorf("%w: no data chunk", ErrMalformedContainer)
	}
	if channels < 1 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: invalid fmt header (channels=%d rate=%d)", ErrMalformedContainer, channels, sampleRate)
	}

	switch {
	case audioFormat == wavFormatPCM && (bitsPerSample == 8 || bitsPerSample == 16 || bitsPerSample == 24 || bitsPerSample == 32):
	case audioFormat == wavFormatIEEEFloat && bitsPerSample == 32:
	default:
		return nil, fmt.Errorf("%w: format %d at %d bits", ErrUnsupportedEncoding, audioFormat, bitsPerSample)
	}

	bytesPerSample := bitsPerSample / 8
	frameSize := bytesPerSample * channels
	if len(sampleData)%frameSize != 0 {
		return nil, fmt.Errorf("%w: data chunk is not frame-aligned", ErrMalformedContainer)
	}
	frames := len(sampleData) / frameSize

	depth, err := depthOf(audioFormat, bitsPerSample)
	if err != nil {
		return nil, err
	}

	samples := make([][]float64, channels)
	for c := range samples {
		samples[c] = make([]float64, frames)
	}

	for f := 0; f < frames; f++ {
		base := f * frameSize
		for c := 0; c < channels; c++ {
			samples[c][f] = readSample(sampleData[base+c*bytesPerSample:], audioFormat, bitsPerSample)
		}
	}

	return &Buffer{
		SampleRate: sampleRate,
		Depth:      depth,
		Samples:    samples,
	}, nil
}

func depthOf(format uint16, bits int) (BitDepth, error) {
	if format == wavFormatIEEEFloat {
		return Depth32Float, nil
	}
	switch bits {
	case 8:
		return Depth8, nil
	case 16:
		return Depth16, nil
	case 24:
		return Depth24, nil
	case 32:
		return Depth32, nil
	}
	return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedEncoding, bits)
}

// readSample decodes one little-endian sample at the start of b into its raw
// amplitude. 8-bit WAV samples are unsigned; wider integers are signed.
func readSample(b []byte, format uint16, bits int) float64 {
	if format == wavFormatIEEEFloat {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}

	switch bits {
	case 8:
		return float64(b[0])
	case 16:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case 24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v -= 1 << 24
		}
		return float64(v)
	default: // 32
		return float64(int32(binary.LittleEndian.Uint32(b)))
	}
}
