package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/Adiwanwade/aurora/internal/env"
)

// DefaultHTTPPort returns the default HTTP port, honoring the environment
// override. The original gateway listened on 5000 and clients assume it.
func DefaultHTTPPort() int {
	if v := os.Getenv(env.AuroraServerHTTPPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			return port
		}
	}

	return 5000
}

// DefaultConfigPath returns the default path for the aurora config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "aurora", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "aurora")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "aurora")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "aurora")
		}
		return filepath.Join(home, ".config", "aurora")
	}
}

// DefaultStagingPath returns the default directory for request-scoped
// binary staging.
func DefaultStagingPath() string {
	return filepath.Join(os.TempDir(), "aurora")
}
