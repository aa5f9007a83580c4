// Package version holds build information injected at link time.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/valassis-fcalle/savi-project-bootstrap/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/valassis-fcalle/savi-project-bootstrap/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/valassis-fcalle/savi-project-bootstrap/internal/version.Date={{.Date}}
)

// String renders the build information on one line
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
