package audio

import (
	"fmt"
	"math"
)

// ToFloat32 rescales integer PCM amplitudes into the float32 [-1, 1] range
// using the format's full-scale divisor. Float input passes through
// unchanged. The input buffer is not modified.
func ToFloat32(buf *Buffer) (*Buffer, error) {
	out := &Buffer{
		SampleRate: buf.SampleRate,
		Depth:      Depth32Float,
		Samples:    make([][]float64, buf.Channels()),
	}

	for c, ch := range buf.Samples {
		converted := make([]float64, len(ch))
		switch buf.Depth {
		case Depth8:
			// 8-bit WAV is unsigned, centered on 128.
			for i, v := range ch {
				converted[i] = (v - 128) / 128
			}
		case Depth16:
			for i, v := range ch {
				converted[i] = v / 32768
			}
		case Depth24:
			for i, v := range ch {
				converted[i] = v / 8388608
			}
		case Depth32:
			for i, v := range ch {
				converted[i] = v / 2147483648
			}
		case Depth32Float:
			copy(converted, ch)
		default:
			return nil, fmt.Errorf("%w: depth %s", ErrUnsupportedEncoding, buf.Depth)
		}
		out.Samples[c] = converted
	}

	return out, nil
}

// Resample changes the buffer's sample rate to targetRate using linear
// interpolation per channel. It is deterministic and preserves total signal
// duration to within one sample period. A buffer already at targetRate is
// copied verbatim so the conversion is bit-exact in that case.
func Resample(buf *Buffer, targetRate int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTargetRate, targetRate)
	}

	out := &Buffer{
		SampleRate: targetRate,
		Depth:      buf.Depth,
		Samples:    make([][]float64, buf.Channels()),
	}

	if buf.SampleRate == targetRate {
		for c, ch := range buf.Samples {
			out.Samples[c] = append([]float64(nil), ch...)
		}
		return out, nil
	}

	ratio := float64(targetRate) / float64(buf.SampleRate)

	for c, ch := range buf.Samples {
		n := len(ch)
		if n == 0 {
			out.Samples[c] = []float64{}
			continue
		}

		outLen := int(math.Round(float64(n) * ratio))
		if outLen < 1 {
			outLen = 1
		}

		resampled := make([]float64, outLen)
		for i := 0; i < outLen; i++ {
			srcPos := float64(i) / ratio
			j := int(srcPos)
			if j >= n-1 {
				resampled[i] = ch[n-1]
				continue
			}
			t := srcPos - float64(j)
			resampled[i] = (1-t)*ch[j] + t*ch[j+1]
		}
		out.Samples[c] = resampled
	}

	return out, nil
}
