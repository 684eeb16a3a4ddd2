package config

import "os"

// LocalModeSentinel is the ENV value that switches every client to its local emulator
const LocalModeSentinel = "local"

// RuntimeMode selects between the provider's default endpoints and local emulators.
// It is decided once per process.
type RuntimeMode int

const (
	ModeProduction RuntimeMode = iota
	ModeLocal
)

func (m RuntimeMode) String() string {
	switch m {
	case ModeLocal:
		return "local"
	default:
		return "production"
	}
}

// IsLocal reports whether local emulator endpoints are in use
func (m RuntimeMode) IsLocal() bool {
	return m == ModeLocal
}

// ParseRuntimeMode maps the raw mode selector to a RuntimeMode.
// Only an exact, case-sensitive match of the sentinel selects local mode; anything else,
// including an empty value, selects production.
func ParseRuntimeMode(value string) RuntimeMode {
	if value == LocalModeSentinel {
		return ModeLocal
	}
	return ModeProduction
}

// IsRunningInLambda detects if the process is hosted by AWS Lambda
func IsRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsRunningInLambda() {
		return "serverless"
	}
	return "standalone"
}
