// Package patch switches an already scaffolded project from the
// conventional commitlint preset to the jira rule plugin and preset.
package patch

import (
	"context"
	"os"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/artifacts"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/scaffold"
)

// Step names
const (
	StepInstall = "jira-dependencies"
	StepConfig  = "jira-config"
)

// Steps returns the patch steps in run order
func Steps() []scaffold.Step {
	return []scaffold.Step{
		{Name: StepInstall, Label: "Installing new dependencies ...", Kind: errors.ErrDependencyInstall, Run: installPlugin},
		{Name: StepConfig, Label: "Updating configuration ...", Kind: errors.ErrArtifactWrite, Run: writeConfig},
	}
}

// New creates the patch pipeline. The project folder is expected to exist;
// a missing folder surfaces as a failed install.
func New(cfg *config.Config, opts scaffold.Options) *scaffold.Pipeline {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Reporter == nil {
		opts.Reporter = scaffold.NewReporter(opts.Out).WithDimLabels()
	}
	return scaffold.NewWithSteps("commitlint-jira", cfg, opts, Steps())
}

func installPlugin(ctx context.Context, env *scaffold.Env) error {
	args := append([]string{"install", "-D"}, artifacts.JiraDependencies...)
	return env.Exec(ctx, errors.ErrDependencyInstall, env.Config.Tools.NPM, args...)
}

func writeConfig(ctx context.Context, env *scaffold.Env) error {
	return env.Write(ctx, artifacts.CommitLintJira())
}
