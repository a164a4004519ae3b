package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Adiwanwade/aurora/internal/engine"
	"github.com/Adiwanwade/aurora/internal/mapsafe"
)

// EngineName identifies the CLI engine implementation.
const EngineName = "cli"

// Engine implements engine.Engine for piper-style speech synthesizers: the
// binary reads text from stdin and writes WAV audio to an output file.
type Engine struct {
	executor  *engine.Executor
	modelPath string
	tempDir   string
}

// NewEngine creates a CLI engine around the synthesizer binary at binPath.
func NewEngine(binPath, modelPath string) (*Engine, error) {
	executor, err := engine.NewExecutor(binPath, 30*time.Second)
	if err != nil {
		return nil, err
	}

	return &Engine{
		executor:  executor,
		modelPath: modelPath,
		tempDir:   os.TempDir(),
	}, nil
}

// NewEngineWithExecutor creates a CLI engine with a pre-built executor.
func NewEngineWithExecutor(executor *engine.Executor, modelPath string) *Engine {
	return &Engine{
		executor:  executor,
		modelPath: modelPath,
		tempDir:   os.TempDir(),
	}
}

// Name implements engine.Engine.
func (e *Engine) Name() string {
	return EngineName
}

// Infer synthesizes speech from req.Text.
// The synthesizer CLI only writes to a file, so output is staged in a
// uniquely named temp file and removed before returning.
func (e *Engine) Infer(ctx context.Context, req *engine.Request) (*engine.Response, error) {
	outputFile := filepath.Join(e.tempDir, fmt.Sprintf("synth_%s.wav", uuid.NewString()))
	defer os.Remove(outputFile)

	args := e.buildArgs(req, outputFile)

	stdout, stderr, err := e.executor.Execute(ctx, args, strings.NewReader(req.Text))
	if err != nil {
		return nil, fmt.Errorf("%w: execution failed: %v: %s", engine.ErrFailure, err, stderr)
	}

	audioData, err := os.ReadFile(outputFile)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read synthesized audio: %v", engine.ErrFailure, err)
	}

	return &engine.Response{
		Audio: audioData,
		Metadata: &engine.ResponseMetadata{
			Engine:      EngineName,
			Task:        req.Task,
			Timestamp:   time.Now(),
			OutputBytes: int64(len(audioData)),
			EngineSpecific: map[string]any{
				"stdout": string(stdout),
				"args":   args,
			},
		},
	}, nil
}

// buildArgs builds the synthesizer command line.
func (e *Engine) buildArgs(req *engine.Request, outputFile string) []string {
	args := []string{
		"--model", e.modelPath,
		"--output_file", outputFile,
	}

	p := req.Parameters
	if p == nil {
		return args
	}

	if v := mapsafe.Get(p, "speaker_id", -1); v >= 0 {
		args = append(args, "--speaker", fmt.Sprintf("%d", v))
	}
	if v := mapsafe.Get(p, "length_scale", 0.0); v != 0 {
		args = append(args, "--length_scale", fmt.Sprintf("%.2f", v))
	}
	if v := mapsafe.Get(p, "noise_scale", 0.0); v != 0 {
		args = append(args, "--noise_scale", fmt.Sprintf("%.2f", v))
	}

	return args
}

// Close implements engine.Engine. The CLI leaves nothing running.
func (e *Engine) Close() error {
	return nil
}
