package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

// TranslateInput is the huma input for the translate operation.
type TranslateInput struct {
	Body TextRequestDTO
}

// TranslationHandler handles HTTP requests for translation.
type TranslationHandler struct {
	dispatcher *service.Dispatcher
}

// NewTranslationHandler creates a new TranslationHandler instance.
func NewTranslationHandler(api huma.API, dispatcher *service.Dispatcher) *TranslationHandler {
	h := &TranslationHandler{dispatcher: dispatcher}

	huma.Register(api, huma.Operation{
		OperationID:   "translation",
		Method:        http.MethodPost,
		Path:          "/api/translation",
		Summary:       "Translate source-language text",
		Tags:          []string{"text"},
		DefaultStatus: http.StatusOK,
	}, h.handle)

	return h
}

func (h *TranslationHandler) handle(ctx context.Context, input *TranslateInput) (*JSONOutput, error) {
	return dispatchJSON(ctx, h.dispatcher, &service.Request{
		Kind:       service.KindTranslation,
		Text:       input.Body.Text,
		Parameters: input.Body.Parameters,
	})
}
