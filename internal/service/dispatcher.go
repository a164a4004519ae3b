package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Adiwanwade/aurora/internal/audio"
	"github.com/Adiwanwade/aurora/internal/engine"
	"github.com/Adiwanwade/aurora/internal/fetch"
)

const (
	// AttachmentFilename is the fixed download name for synthesized audio.
	AttachmentFilename = "generated_audio.wav"

	// AttachmentMIME is the media type of synthesized audio.
	AttachmentMIME = "audio/wav"
)

// Request is one inbound service request after route classification.
type Request struct {
	Kind        Kind
	Text        string
	ResourceURL string
	Parameters  map[string]any
}

// Response is the dispatcher's terminal result: either a structured JSON
// value or a binary audio attachment, never both.
type Response struct {
	JSON  any
	Audio *Attachment
}

// Attachment is a binary download with its transmission headers.
type Attachment struct {
	Data     []byte
	MIME     string
	Filename string
}

// Dispatcher routes a validated request to the right engine and selects the
// response encoding. It owns the full request lifecycle: validation,
// normalization for the audio path, inference, and encoding. Each request is
// independent; the dispatcher holds no per-request state.
type Dispatcher struct {
	engines    func() *engine.Registry
	fetcher    *fetch.Client
	stagingDir string
}

// NewDispatcher creates a dispatcher. The registry is taken through a
// snapshot function so engine assignments can be re-wired by a config reload
// mid-flight without tearing requests.
func NewDispatcher(engines func() *engine.Registry, fetcher *fetch.Client, stagingDir string) *Dispatcher {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}

	return &Dispatcher{
		engines:    engines,
		fetcher:    fetcher,
		stagingDir: stagingDir,
	}
}

// Dispatch runs one request to its terminal response. Validation failures
// return *ValidationError; every other failure is the underlying stage error.
// No partial results are returned and nothing is retried.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	log := slog.With("request_id", requestID, "service", req.Kind.String())

	if err := validate(req); err != nil {
		log.Warn("Request rejected", "error", err)
		return nil, err
	}

	engineReq, err := d.prepare(ctx, req)
	if err != nil {
		log.Error("Failed to prepare canonical input", "error", err)
		return nil, err
	}

	eng, ok := d.engines().Get(req.Kind.Task())
	if !ok {
		log.Error("No engine for task", "task", req.Kind.Task())
		return nil, fmt.Errorf("%w: %s", engine.ErrNotFound, req.Kind.Task())
	}

	resp, err := eng.Infer(ctx, engineReq)
	if err != nil {
		log.Error("Inference failed", "engine", eng.Name(), "error", err)
		return nil, err
	}

	out, err := d.encode(req.Kind, resp)
	if err != nil {
		log.Error("Failed to encode response", "error", err)
		return nil, err
	}

	log.Info("Request served", "engine", eng.Name(), "duration", time.Since(start))
	return out, nil
}

// validate checks that the modality's required field is populated.
func validate(req *Request) error {
	modality := req.Kind.Modality()

	switch modality {
	case ModalityText:
		if req.Text == "" {
			return &ValidationError{Message: modality.missingFieldMessage()}
		}
	case ModalityImageURL, ModalityAudioURL:
		if req.ResourceURL == "" {
			return &ValidationError{Message: modality.missingFieldMessage()}
		}
	}

	return nil
}

// prepare converts the request's declared input into canonical engine input.
// Text passes straight through. Image URLs are fetched to raw bytes. Audio
// URLs run the full normalization pipeline.
func (d *Dispatcher) prepare(ctx context.Context, req *Request) (*engine.Request, error) {
	out := &engine.Request{
		Task:       req.Kind.Task(),
		Parameters: req.Parameters,
	}

	switch req.Kind.Modality() {
	case ModalityText:
		out.Text = req.Text

	case ModalityImageURL:
		data, err := d.fetcher.Fetch(ctx, req.ResourceURL)
		if err != nil {
			return nil, err
		}
		out.Image = data

	case ModalityAudioURL:
		data, err := d.fetcher.Fetch(ctx, req.ResourceURL)
		if err != nil {
			return nil, err
		}

		canonical, err := audio.Normalize(data)
		if err != nil {
			return nil, err
		}
		out.Audio = canonical
	}

	return out, nil
}

// encode selects the response encoding for the service kind. Synthesis gets
// a binary attachment; everything else passes the engine's structured result
// through unchanged.
func (d *Dispatcher) encode(kind Kind, resp *engine.Response) (*Response, error) {
	if kind != KindSpeechSynthesis {
		return &Response{JSON: resp.Data}, nil
	}

	attachment, err := d.stage(resp.Audio)
	if err != nil {
		return nil, err
	}

	return &Response{Audio: attachment}, nil
}

// stage writes synthesized audio through a request-scoped temp file and
// removes it before returning, on success and failure alike. The staged file
// never outlives the request.
func (d *Dispatcher) stage(data []byte) (*Attachment, error) {
	path := filepath.Join(d.stagingDir, fmt.Sprintf("staged_%s.wav", uuid.NewString()))

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to stage synthesized audio: %w", err)
	}
	defer os.Remove(path)

	staged, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged audio: %w", err)
	}

	return &Attachment{
		Data:     staged,
		MIME:     AttachmentMIME,
		Filename: AttachmentFilename,
	}, nil
}
