package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

type (
	// SynthesizeInput is the huma input for the synthesize operation.
	SynthesizeInput struct {
		Body TextRequestDTO
	}

	// SynthesizeOutput streams the synthesized audio as an attachment
	// download rather than a JSON document.
	SynthesizeOutput struct {
		ContentType        string `header:"Content-Type"`
		ContentDisposition string `header:"Content-Disposition"`
		Body               []byte
	}
)

// SynthesizeHandler handles HTTP requests for speech synthesis.
type SynthesizeHandler struct {
	dispatcher *service.Dispatcher
}

// NewSynthesizeHandler creates a new SynthesizeHandler instance.
func NewSynthesizeHandler(api huma.API, dispatcher *service.Dispatcher) *SynthesizeHandler {
	h := &SynthesizeHandler{dispatcher: dispatcher}

	huma.Register(api, huma.Operation{
		OperationID:   "text-to-speech",
		Method:        http.MethodPost,
		Path:          "/api/text-to-speech",
		Summary:       "Synthesize speech and download it as a WAV file",
		Tags:          []string{"audio"},
		DefaultStatus: http.StatusOK,
	}, h.handle)

	return h
}

// handle synthesizes speech from the input text. The dispatcher stages the
// audio in a request-scoped temp file and releases it before responding;
// this handler only carries the finished bytes out.
func (h *SynthesizeHandler) handle(ctx context.Context, input *SynthesizeInput) (*SynthesizeOutput, error) {
	resp, err := h.dispatcher.Dispatch(ctx, &service.Request{
		Kind:       service.KindSpeechSynthesis,
		Text:       input.Body.Text,
		Parameters: input.Body.Parameters,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &SynthesizeOutput{
		ContentType:        resp.Audio.MIME,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", resp.Audio.Filename),
		Body:               resp.Audio.Data,
	}, nil
}
