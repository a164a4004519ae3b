package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Adiwanwade/aurora/internal/engine"
	"github.com/Adiwanwade/aurora/internal/mapsafe"
)

// EngineName identifies the remote engine implementation.
const EngineName = "remote"

// DefaultTimeout bounds a single inference call. Transcription and synthesis
// can take a while on CPU-only servers.
const DefaultTimeout = 5 * time.Minute

// Engine implements engine.Engine against a remote inference server. Text
// tasks post JSON; audio and image tasks upload the payload as multipart
// form data, the way whisper-server style backends expect it.
type Engine struct {
	baseURL string
	client  *http.Client
}

// NewEngine creates a remote engine rooted at baseURL. Task endpoints are
// baseURL/<task>.
func NewEngine(baseURL string, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Engine{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Name implements engine.Engine.
func (e *Engine) Name() string {
	return EngineName
}

// Close implements engine.Engine. The remote server's lifecycle is not ours.
func (e *Engine) Close() error {
	return nil
}

// Infer implements engine.Engine.
func (e *Engine) Infer(ctx context.Context, req *engine.Request) (*engine.Response, error) {
	var (
		body        io.Reader
		contentType string
		err         error
	)

	switch {
	case req.Audio != nil:
		body, contentType, err = e.audioForm(req)
	case req.Image != nil:
		body, contentType, err = e.imageForm(req)
	default:
		body, contentType, err = e.textBody(req)
	}
	if err != nil {
		return nil, err
	}

	url := e.baseURL + "/" + string(req.Task)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrFailure, err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", engine.ErrFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s: %s", engine.ErrFailure, url, resp.Status, truncate(raw, 256))
	}

	out := &engine.Response{
		Metadata: &engine.ResponseMetadata{
			Engine:      EngineName,
			Task:        req.Task,
			Timestamp:   time.Now(),
			OutputBytes: int64(len(raw)),
		},
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "audio/") {
		out.Audio = raw
		return out, nil
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON from %s: %v", engine.ErrFailure, url, err)
	}
	out.Data = data

	return out, nil
}

// textBody builds a JSON request body for text-modality tasks.
func (e *Engine) textBody(req *engine.Request) (io.Reader, string, error) {
	payload := map[string]any{"text": req.Text}
	if len(req.Parameters) > 0 {
		payload["parameters"] = req.Parameters
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", engine.ErrFailure, err)
	}

	return bytes.NewReader(data), "application/json", nil
}

// audioForm wraps canonical PCM into a 16-bit WAV and builds a multipart
// upload for it.
func (e *Engine) audioForm(req *engine.Request) (io.Reader, string, error) {
	wavData := encodeWAV16(req.Audio)
	return e.fileForm(req, "audio.wav", wavData)
}

// imageForm builds a multipart upload for raw image bytes.
func (e *Engine) imageForm(req *engine.Request) (io.Reader, string, error) {
	return e.fileForm(req, "image.bin", req.Image)
}

func (e *Engine) fileForm(req *engine.Request, filename string, data []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", engine.ErrFailure, err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("%w: %v", engine.ErrFailure, err)
	}

	if err := e.addParams(writer, req.Parameters); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", engine.ErrFailure, err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// addParams copies well-known inference parameters into the form.
func (e *Engine) addParams(writer *multipart.Writer, params map[string]any) error {
	if params == nil {
		return nil
	}

	fields := map[string]string{}

	if v := mapsafe.Get(params, "language", ""); v != "" {
		fields["language"] = v
	}
	if v := mapsafe.Get(params, "temperature", 0.0); v != 0 {
		fields["temperature"] = fmt.Sprintf("%.2f", v)
	}
	if v := mapsafe.Get(params, "beam_size", 0); v != 0 {
		fields["beam_size"] = fmt.Sprintf("%d", v)
	}

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return fmt.Errorf("%w: %v", engine.ErrFailure, err)
		}
	}

	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
