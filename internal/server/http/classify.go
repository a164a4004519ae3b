package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

// ClassifyInput is the huma input for the classify operation.
type ClassifyInput struct {
	Body ResourceRequestDTO
}

// ClassifyHandler handles HTTP requests for image classification.
type ClassifyHandler struct {
	dispatcher *service.Dispatcher
}

// NewClassifyHandler creates a new ClassifyHandler instance.
func NewClassifyHandler(api huma.API, dispatcher *service.Dispatcher) *ClassifyHandler {
	h := &ClassifyHandler{dispatcher: dispatcher}

	huma.Register(api, huma.Operation{
		OperationID:   "image-classification",
		Method:        http.MethodPost,
		Path:          "/api/image-classification",
		Summary:       "Classify an image by URL",
		Tags:          []string{"image"},
		DefaultStatus: http.StatusOK,
	}, h.handle)

	return h
}

// handle fetches the referenced image and returns an array of {label, score}.
func (h *ClassifyHandler) handle(ctx context.Context, input *ClassifyInput) (*JSONOutput, error) {
	return dispatchJSON(ctx, h.dispatcher, &service.Request{
		Kind:        service.KindImageClassification,
		ResourceURL: input.Body.ResourceURL,
		Parameters:  input.Body.Parameters,
	})
}
