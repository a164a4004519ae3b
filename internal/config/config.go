package config

import "errors"

// BindingType represents the type of engine binding.
type BindingType string

const (
	// BindingTypeRemote binds a task to a remote inference server.
	BindingTypeRemote BindingType = "remote"

	// BindingTypeCLI binds a task to a local synthesizer binary.
	BindingTypeCLI BindingType = "cli"
)

// Config holds the main configuration for the gateway.
type Config struct {
	Version string        `json:"version"           yaml:"version"`
	Server  ServerConfig  `json:"server,omitempty"  yaml:"server,omitempty"`
	Fetch   FetchConfig   `json:"fetch,omitempty"   yaml:"fetch,omitempty"`
	Staging StagingConfig `json:"staging,omitempty" yaml:"staging,omitempty"`
	Engines EnginesConfig `json:"engines"           yaml:"engines"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host     string `json:"host,omitempty"      yaml:"host,omitempty"`
	HTTPPort int    `json:"http_port,omitempty" yaml:"http_port,omitempty"`
}

// FetchConfig holds settings for remote resource retrieval.
type FetchConfig struct {
	TimeoutSeconds int `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
	CacheEntries   int `json:"cache_entries,omitempty"   yaml:"cache_entries,omitempty"`
}

// StagingConfig holds settings for request-scoped binary staging.
type StagingConfig struct {
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// EnginesConfig assigns inference engines to tasks. Default applies to every
// task that has no entry in Tasks; Tasks is keyed by task identifier
// (e.g. "automatic-speech-recognition").
type EnginesConfig struct {
	Default *RemoteEngine           `json:"default,omitempty" yaml:"default,omitempty"`
	Tasks   map[string]EngineConfig `json:"tasks,omitempty"   yaml:"tasks,omitempty"`
}

// EngineConfig wraps optional bindings (only one should be set).
type EngineConfig struct {
	Remote *RemoteEngine `json:"remote,omitempty" yaml:"remote,omitempty"`
	CLI    *CLIEngine    `json:"cli,omitempty"    yaml:"cli,omitempty"`
}

// -------------------------
// Binding definitions
// -------------------------

// EngineBinding represents a way to reach an inference engine.
type EngineBinding interface {
	Type() BindingType
}

// RemoteEngine binds to an inference server over HTTP.
type RemoteEngine struct {
	URL            string `json:"url"                       yaml:"url"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
}

// Type returns the remote binding type.
func (r RemoteEngine) Type() BindingType {
	return BindingTypeRemote
}

// CLIEngine binds to a local synthesizer binary.
type CLIEngine struct {
	BinPath   string `json:"bin_path"             yaml:"bin_path"`
	ModelPath string `json:"model_path,omitempty" yaml:"model_path,omitempty"`
}

// Type returns the CLI binding type.
func (c CLIEngine) Type() BindingType {
	return BindingTypeCLI
}

// GetBinding returns the active binding for the engine entry.
func (e *EngineConfig) GetBinding() (EngineBinding, error) {
	if e.Remote != nil {
		return *e.Remote, nil
	}
	if e.CLI != nil {
		return *e.CLI, nil
	}

	return nil, errors.New("no binding configured for engine")
}
