package env

import "os"

const (
	// AuroraEnv is the environment variable used to determine the runtime environment.
	AuroraEnv = "AURORA_ENV"

	// AuroraServerHTTPPort is the environment variable used to override the HTTP port.
	AuroraServerHTTPPort = "AURORA_SERVER_HTTP_PORT"
)

// Environment identifies the runtime environment the gateway runs in.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv resolves the runtime environment from AURORA_ENV.
// Anything other than "production" is treated as development.
func FromEnv() Environment {
	if os.Getenv(AuroraEnv) == string(Production) {
		return Production
	}

	return Development
}

// IsProduction reports whether the environment is production.
func (e Environment) IsProduction() bool {
	return e == Production
}
