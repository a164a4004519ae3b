package service

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Adiwanwade/aurora/internal/config"
	"github.com/Adiwanwade/aurora/internal/engine"
	"github.com/Adiwanwade/aurora/internal/engine/cli"
	"github.com/Adiwanwade/aurora/internal/engine/remote"
)

// EngineManager orchestrates engine lifecycle from config. Reloads build a
// fresh registry and swap it in; in-flight requests keep the snapshot they
// started with.
type EngineManager struct {
	registry *engine.Registry
	mu       sync.RWMutex
}

// NewEngineManager creates a new EngineManager instance.
func NewEngineManager() *EngineManager {
	return &EngineManager{
		registry: engine.NewRegistry(),
	}
}

// Registry returns the current engine registry.
func (m *EngineManager) Registry() *engine.Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry
}

// Close closes the current registry's engines.
func (m *EngineManager) Close() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry.Close()
}

// LoadFromConfig wires engines to tasks from the config and swaps the new
// registry in. The default remote binding covers every task without an
// explicit entry; per-task entries override it.
func (m *EngineManager) LoadFromConfig(cfg *config.Config) error {
	registry := engine.NewRegistry()

	if cfg.Engines.Default != nil {
		shared := remote.NewEngine(
			cfg.Engines.Default.URL,
			time.Duration(cfg.Engines.Default.TimeoutSeconds)*time.Second,
		)
		for _, kind := range Kinds() {
			registry.Register(kind.Task(), shared)
		}
	}

	for taskID, entry := range cfg.Engines.Tasks {
		task := engine.Task(taskID)
		if _, ok := KindFromTask(task); !ok {
			slog.Warn("Unknown task in engine config", "task", taskID)
			continue
		}

		binding, err := entry.GetBinding()
		if err != nil {
			return fmt.Errorf("engine config for %s: %w", taskID, err)
		}

		var eng engine.Engine
		switch b := binding.(type) {
		case config.RemoteEngine:
			eng = remote.NewEngine(b.URL, time.Duration(b.TimeoutSeconds)*time.Second)
		case config.CLIEngine:
			eng, err = cli.NewEngine(b.BinPath, b.ModelPath)
			if err != nil {
				return fmt.Errorf("engine config for %s: %w", taskID, err)
			}
		default:
			return fmt.Errorf("engine config for %s: unsupported binding %s", taskID, binding.Type())
		}

		registry.Register(task, eng)
		slog.Info("Engine wired", "task", taskID, "engine", eng.Name())
	}

	m.mu.Lock()
	m.registry = registry
	m.mu.Unlock()

	return nil
}
