package engine

import (
	"context"
	"time"

	"github.com/Adiwanwade/aurora/internal/audio"
)

// Task identifies an inference task supported by the gateway.
type Task string

const (
	TaskSentiment           Task = "sentiment-analysis"
	TaskSpeechRecognition   Task = "automatic-speech-recognition"
	TaskTranslation         Task = "translation"
	TaskTextGeneration      Task = "text2text-generation"
	TaskImageClassification Task = "image-classification"
	TaskImageCaptioning     Task = "image-to-text"
	TaskSpeechSynthesis     Task = "text-to-speech"
)

// Engine is the capability interface of the inference collaborator. The
// gateway treats it as a black box: canonical input goes in, a structured
// result or raw audio comes out. Implementations must be safe for concurrent
// use.
type Engine interface {
	// Name returns the engine identifier.
	Name() string

	// Infer executes inference and returns the complete result.
	Infer(ctx context.Context, req *Request) (*Response, error)

	// Close cleans up resources.
	Close() error
}

// Request carries canonical input for one inference call. Exactly one of
// Text, Image, or Audio is populated, per the task's modality.
type Request struct {
	// Task selects the inference task.
	Task Task

	// Text input for text-modality tasks.
	Text string

	// Image is the raw image bytes for image-modality tasks.
	Image []byte

	// Audio is normalized PCM for speech-recognition tasks.
	Audio *audio.Canonical

	// Parameters contains engine-specific inference parameters.
	Parameters map[string]any
}

// Response contains the result of an inference operation.
type Response struct {
	// Data is the structured result, passed through to the client as JSON.
	Data any

	// Audio is raw WAV bytes, populated only for speech synthesis.
	Audio []byte

	// Metadata contains engine-specific information.
	Metadata *ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	Engine         string         `json:"engine"`
	Task           Task           `json:"task"`
	Timestamp      time.Time      `json:"timestamp"`
	OutputBytes    int64          `json:"output_bytes"`
	EngineSpecific map[string]any `json:"engine_specific,omitempty"`
}
