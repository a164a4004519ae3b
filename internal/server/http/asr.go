package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

// TranscribeInput is the huma input for the transcribe operation.
type TranscribeInput struct {
	Body ResourceRequestDTO
}

// ASRHandler handles HTTP requests for speech recognition.
type ASRHandler struct {
	dispatcher *service.Dispatcher
}

// NewASRHandler creates a new ASRHandler instance.
func NewASRHandler(api huma.API, dispatcher *service.Dispatcher) *ASRHandler {
	h := &ASRHandler{dispatcher: dispatcher}

	huma.Register(api, huma.Operation{
		OperationID:   "asr",
		Method:        http.MethodPost,
		Path:          "/api/asr",
		Summary:       "Transcribe speech from a WAV audio URL",
		Tags:          []string{"audio"},
		DefaultStatus: http.StatusOK,
	}, h.handle)

	return h
}

// handle fetches and normalizes the referenced audio, then returns the
// engine's transcript as {text}.
func (h *ASRHandler) handle(ctx context.Context, input *TranscribeInput) (*JSONOutput, error) {
	return dispatchJSON(ctx, h.dispatcher, &service.Request{
		Kind:        service.KindSpeechRecognition,
		ResourceURL: input.Body.ResourceURL,
		Parameters:  input.Body.Parameters,
	})
}
