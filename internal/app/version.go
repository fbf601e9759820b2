package app

import "fmt"

// Set via ldflags, for example:
// go build -ldflags "-X github.com/dawoodjaved5/soventure-project/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported at startup and by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
