package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type (
	// HealthOutput is the huma output for the health operation.
	HealthOutput struct {
		Body struct {
			Status string `json:"status"`
		}
	}
)

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(api huma.API) *HealthHandler {
	h := &HealthHandler{}

	huma.Register(api, huma.Operation{
		OperationID:   "health",
		Method:        http.MethodGet,
		Path:          "/api/health",
		Summary:       "Health check",
		Tags:          []string{"ops"},
		DefaultStatus: http.StatusOK,
	}, h.handle)

	return h
}

func (h *HealthHandler) handle(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	return out, nil
}
