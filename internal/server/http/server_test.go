package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adiwanwade/aurora/internal/engine"
	"github.com/Adiwanwade/aurora/internal/fetch"
	"github.com/Adiwanwade/aurora/internal/service"
)

// stubEngine answers every inference with a canned response.
type stubEngine struct {
	resp *engine.Response
	err  error

	lastReq *engine.Request
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Infer(_ context.Context, req *engine.Request) (*engine.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

func (s *stubEngine) Close() error { return nil }

func newTestAPI(t *testing.T, eng engine.Engine) humatest.TestAPI {
	t.Helper()

	registry := engine.NewRegistry()
	if eng != nil {
		for _, kind := range service.Kinds() {
			registry.Register(kind.Task(), eng)
		}
	}

	dispatcher := service.NewDispatcher(
		func() *engine.Registry { return registry },
		fetch.NewClient(time.Second, 0),
		t.TempDir(),
	)

	_, api := humatest.New(t)

	NewHealthHandler(api)
	NewSentimentHandler(api, dispatcher)
	NewASRHandler(api, dispatcher)
	NewTranslationHandler(api, dispatcher)
	NewGenerationHandler(api, dispatcher)
	NewClassifyHandler(api, dispatcher)
	NewCaptionHandler(api, dispatcher)
	NewSynthesizeHandler(api, dispatcher)

	return api
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, nil)

	resp := api.Get("/api/health")

	assert.Equal(t, 200, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestSentiment_PassesResultThrough(t *testing.T) {
	eng := &stubEngine{resp: &engine.Response{
		Data: []any{map[string]any{"label": "POSITIVE", "score": 0.998}},
	}}
	api := newTestAPI(t, eng)

	resp := api.Post("/api/sentiment", map[string]any{
		"text": "what a day",
	})

	require.Equal(t, 200, resp.Code)
	assert.JSONEq(t, `[{"label":"POSITIVE","score":0.998}]`, resp.Body.String())
	assert.Equal(t, "what a day", eng.lastReq.Text)
}

func TestValidation_MissingFields(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/sentiment", "Text is required"},
		{"/api/translation", "Text is required"},
		{"/api/text-generation", "Text is required"},
		{"/api/text-to-speech", "Text is required"},
		{"/api/image-classification", "No image URL provided"},
		{"/api/image-to-text", "No image URL provided"},
		{"/api/asr", "No audio URL provided"},
	}

	api := newTestAPI(t, &stubEngine{resp: &engine.Response{}})

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := api.Post(tt.path, map[string]any{})

			require.Equal(t, 400, resp.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body["error"])
		})
	}
}

func TestSynthesize_AttachmentHeaders(t *testing.T) {
	wavBytes := []byte("RIFF-synthesized-output")
	api := newTestAPI(t, &stubEngine{resp: &engine.Response{Audio: wavBytes}})

	resp := api.Post("/api/text-to-speech", map[string]any{
		"text": "hello there",
	})

	require.Equal(t, 200, resp.Code)
	assert.Equal(t, "audio/wav", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="generated_audio.wav"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, wavBytes, resp.Body.Bytes())
}

func TestClassify_UnreachableResource(t *testing.T) {
	api := newTestAPI(t, &stubEngine{resp: &engine.Response{}})

	resp := api.Post("/api/image-classification", map[string]any{
		"resourceUrl": "http://127.0.0.1:1/image.jpg",
	})

	require.Equal(t, 500, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "unreachable")
}

func TestGeneration_ForwardsParameters(t *testing.T) {
	eng := &stubEngine{resp: &engine.Response{
		Data: []any{map[string]any{"generated_text": "Once upon a time"}},
	}}
	api := newTestAPI(t, eng)

	resp := api.Post("/api/text-generation", map[string]any{
		"text":       "Once",
		"parameters": map[string]any{"max_length": 64},
	})

	require.Equal(t, 200, resp.Code)
	require.NotNil(t, eng.lastReq)
	assert.Equal(t, float64(64), eng.lastReq.Parameters["max_length"])
}
