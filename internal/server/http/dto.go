package http

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

type (
	// TextRequestDTO is the request body for text-modality services.
	TextRequestDTO struct {
		Text       string         `json:"text,omitempty" doc:"Input text"`
		Parameters map[string]any `json:"parameters,omitempty" doc:"Optional engine parameters"`
	}

	// ResourceRequestDTO is the request body for URL-modality services.
	ResourceRequestDTO struct {
		ResourceURL string         `json:"resourceUrl,omitempty" doc:"URL of the remote resource"`
		Parameters  map[string]any `json:"parameters,omitempty" doc:"Optional engine parameters"`
	}
)

// JSONOutput passes the engine's structured result through unchanged.
type JSONOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// dispatchJSON runs a request through the dispatcher and serializes the
// structured result without transforming any field.
func dispatchJSON(ctx context.Context, d *service.Dispatcher, req *service.Request) (*JSONOutput, error) {
	resp, err := d.Dispatch(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	data, err := json.Marshal(resp.JSON)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to serialize result", err)
	}

	return &JSONOutput{
		ContentType: "application/json",
		Body:        data,
	}, nil
}

// mapError converts dispatcher errors into user-visible responses.
// Validation failures are 400s with the verbatim message; every other stage
// failure surfaces as a 500 carrying the failure's message.
func mapError(err error) huma.StatusError {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return huma.Error400BadRequest(verr.Message)
	}

	return huma.Error500InternalServerError(err.Error(), err)
}
