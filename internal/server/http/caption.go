package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

// CaptionInput is the huma input for the caption operation.
type CaptionInput struct {
	Body ResourceRequestDTO
}

// CaptionHandler handles HTTP requests for image captioning.
type CaptionHandler struct {
	dispatcher *service.Dispatcher
}

// NewCaptionHandler creates a new CaptionHandler instance.
func NewCaptionHandler(api huma.API, dispatcher *service.Dispatcher) *CaptionHandler {
	h := &CaptionHandler{dispatcher: dispatcher}

	huma.Register(api, huma.Operation{
		OperationID:   "image-to-text",
		Method:        http.MethodPost,
		Path:          "/api/image-to-text",
		Summary:       "Caption an image by URL",
		Tags:          []string{"image"},
		DefaultStatus: http.StatusOK,
	}, h.handle)

	return h
}

func (h *CaptionHandler) handle(ctx context.Context, input *CaptionInput) (*JSONOutput, error) {
	return dispatchJSON(ctx, h.dispatcher, &service.Request{
		Kind:        service.KindImageCaptioning,
		ResourceURL: input.Body.ResourceURL,
		Parameters:  input.Body.Parameters,
	})
}
