package audio

import "errors"

// Error definitions for the audio package.
var (
	ErrMalformedContainer    = errors.New("audio: malformed or truncated container")
	ErrUnsupportedEncoding   = errors.New("audio: unsupported sample encoding")
	ErrInvalidTargetRate     = errors.New("audio: target sample rate must be positive")
	ErrRateMismatch          = errors.New("audio: buffer is not at the canonical sample rate")
	ErrChannelLengthMismatch = errors.New("audio: channels have unequal sample counts")
	ErrNoChannels            = errors.New("audio: buffer has no channels")
)
