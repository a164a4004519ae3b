package audio

// Normalize runs the full ingestion pipeline on a WAV byte buffer: decode the
// container, rescale samples to float32, resample to CanonicalRate, and
// down-mix to mono. Every stage fails fast; no partial result is returned.
func Normalize(data []byte) (*Canonical, error) {
	buf, err := DecodeWAV(data)
	if err != nil {
		return nil, err
	}

	buf, err = ToFloat32(buf)
	if err != nil {
		return nil, err
	}

	buf, err = Resample(buf, CanonicalRate)
	if err != nil {
		return nil, err
	}

	return ToMono(buf)
}
