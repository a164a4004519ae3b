package http

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
)

// ErrorModel renders every error as {"error": "<message>"}, the body shape
// gateway clients parse.
type ErrorModel struct {
	Message string `json:"error" doc:"Human-readable error message"`

	status int
}

// Error implements error.
func (e *ErrorModel) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *ErrorModel) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if message == "" && len(errs) > 0 && errs[0] != nil {
			message = errs[0].Error()
		}

		return &ErrorModel{
			Message: message,
			status:  status,
		}
	}
}

// NewAPI builds the huma API over a standard library mux.
func NewAPI(mux *http.ServeMux, version string) huma.API {
	config := huma.DefaultConfig("Aurora AI Gateway", version)

	return humago.New(mux, config)
}
