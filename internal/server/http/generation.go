package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

// GenerateInput is the huma input for the generate operation.
type GenerateInput struct {
	Body TextRequestDTO
}

// GenerationHandler handles HTTP requests for text generation.
type GenerationHandler struct {
	dispatcher *service.Dispatcher
}

// NewGenerationHandler creates a new GenerationHandler instance.
func NewGenerationHandler(api huma.API, dispatcher *service.Dispatcher) *GenerationHandler {
	h := &GenerationHandler{dispatcher: dispatcher}

	huma.Register(api, huma.Operation{
		OperationID:   "text-generation",
		Method:        http.MethodPost,
		Path:          "/api/text-generation",
		Summary:       "Generate text from a prompt",
		Tags:          []string{"text"},
		DefaultStatus: http.StatusOK,
	}, h.handle)

	return h
}

func (h *GenerationHandler) handle(ctx context.Context, input *GenerateInput) (*JSONOutput, error) {
	return dispatchJSON(ctx, h.dispatcher, &service.Request{
		Kind:       service.KindTextGeneration,
		Text:       input.Body.Text,
		Parameters: input.Body.Parameters,
	})
}
