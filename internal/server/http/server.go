package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Adiwanwade/aurora/internal/service"
)

// Server hosts the gateway's HTTP surface.
type Server struct {
	httpServer *http.Server
	api        huma.API
}

// NewServer builds the mux, the huma API, and every service handler.
func NewServer(host string, port int, version string, dispatcher *service.Dispatcher) *Server {
	mux := http.NewServeMux()
	api := NewAPI(mux, version)

	NewHealthHandler(api)
	NewSentimentHandler(api, dispatcher)
	NewASRHandler(api, dispatcher)
	NewTranslationHandler(api, dispatcher)
	NewGenerationHandler(api, dispatcher)
	NewClassifyHandler(api, dispatcher)
	NewCaptionHandler(api, dispatcher)
	NewSynthesizeHandler(api, dispatcher)

	return &Server{
		api: api,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// API returns the underlying huma API.
func (s *Server) API() huma.API {
	return s.api
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
