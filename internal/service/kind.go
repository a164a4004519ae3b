package service

import "github.com/Adiwanwade/aurora/internal/engine"

// Kind is the closed set of services the gateway exposes. Adding or removing
// a service is a compile-checked change: every switch over Kind below is
// exhaustive with no default fallback.
type Kind int

const (
	KindSentiment Kind = iota
	KindSpeechRecognition
	KindTranslation
	KindTextGeneration
	KindImageClassification
	KindImageCaptioning
	KindSpeechSynthesis
)

// Kinds returns all service kinds.
func Kinds() []Kind {
	return []Kind{
		KindSentiment,
		KindSpeechRecognition,
		KindTranslation,
		KindTextGeneration,
		KindImageClassification,
		KindImageCaptioning,
		KindSpeechSynthesis,
	}
}

// Modality is the declared kind of input a service expects.
type Modality int

const (
	ModalityText Modality = iota
	ModalityImageURL
	ModalityAudioURL
)

// Route returns the service's route segment under /api/.
func (k Kind) Route() string {
	switch k {
	case KindSentiment:
		return "sentiment"
	case KindSpeechRecognition:
		return "asr"
	case KindTranslation:
		return "translation"
	case KindTextGeneration:
		return "text-generation"
	case KindImageClassification:
		return "image-classification"
	case KindImageCaptioning:
		return "image-to-text"
	case KindSpeechSynthesis:
		return "text-to-speech"
	}
	panic("unknown service kind")
}

// String returns the route segment.
func (k Kind) String() string {
	return k.Route()
}

// Modality returns the input modality the service expects.
func (k Kind) Modality() Modality {
	switch k {
	case KindSentiment, KindTranslation, KindTextGeneration, KindSpeechSynthesis:
		return ModalityText
	case KindImageClassification, KindImageCaptioning:
		return ModalityImageURL
	case KindSpeechRecognition:
		return ModalityAudioURL
	}
	panic("unknown service kind")
}

// Task returns the engine task the service dispatches to.
func (k Kind) Task() engine.Task {
	switch k {
	case KindSentiment:
		return engine.TaskSentiment
	case KindSpeechRecognition:
		return engine.TaskSpeechRecognition
	case KindTranslation:
		return engine.TaskTranslation
	case KindTextGeneration:
		return engine.TaskTextGeneration
	case KindImageClassification:
		return engine.TaskImageClassification
	case KindImageCaptioning:
		return engine.TaskImageCaptioning
	case KindSpeechSynthesis:
		return engine.TaskSpeechSynthesis
	}
	panic("unknown service kind")
}

// missingFieldMessage returns the user-facing validation message when the
// modality's required field is empty.
func (m Modality) missingFieldMessage() string {
	switch m {
	case ModalityText:
		return "Text is required"
	case ModalityImageURL:
		return "No image URL provided"
	case ModalityAudioURL:
		return "No audio URL provided"
	}
	panic("unknown modality")
}

// KindFromTask maps an engine task back to its service kind.
func KindFromTask(task engine.Task) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Task() == task {
			return k, true
		}
	}
	return 0, false
}
