package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

// SentimentInput is the huma input for the sentiment operation.
type SentimentInput struct {
	Body TextRequestDTO
}

// SentimentHandler handles HTTP requests for sentiment analysis.
type SentimentHandler struct {
	dispatcher *service.Dispatcher
}

// NewSentimentHandler creates a new SentimentHandler instance.
func NewSentimentHandler(api huma.API, dispatcher *service.Dispatcher) *SentimentHandler {
	h := &SentimentHandler{dispatcher: dispatcher}

	huma.Register(api, huma.Operation{
		OperationID:   "sentiment",
		Method:        http.MethodPost,
		Path:          "/api/sentiment",
		Summary:       "Score the sentiment of a text",
		Tags:          []string{"text"},
		DefaultStatus: http.StatusOK,
	}, h.handle)

	return h
}

// handle scores the input text and returns an array of {label, score}.
func (h *SentimentHandler) handle(ctx context.Context, input *SentimentInput) (*JSONOutput, error) {
	return dispatchJSON(ctx, h.dispatcher, &service.Request{
		Kind:       service.KindSentiment,
		Text:       input.Body.Text,
		Parameters: input.Body.Parameters,
	})
}
