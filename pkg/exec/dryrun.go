package exec

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/logging"
)

// DryRunner logs commands instead of running them. The pipeline records
// the commands itself, in order with the files it writes.
type DryRunner struct {
	logger zerolog.Logger
}

// NewDryRunner creates a runner that never executes anything
func NewDryRunner() *DryRunner {
	return &DryRunner{logger: logging.GetLogger("exec.dryrun")}
}

// Run logs cmd and always succeeds
func (d *DryRunner) Run(ctx context.Context, cmd Command) error {
	d.logger.Info().
		Str("command", cmd.String()).
		Str("dir", cmd.Dir).
		Msg("Dry run mode - command would be executed")
	return nil
}
