package scaffold

import (
	"context"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/artifacts"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// Step names
const (
	StepReset        = "reset"
	StepDependencies = "dependencies"
	StepHooks        = "hooks"
	StepSpellChecker = "spellchecker"
	StepCommitLint   = "commitlint"
	StepLinter       = "linter"
	StepFormatter    = "formatter"
	StepLintStaged   = "lintstaged"
	StepRelease      = "release"
)

// BootstrapSteps returns the scaffold steps in run order
func BootstrapSteps() []Step {
	return []Step{
		{Name: StepReset, Label: "Preparing ...", Kind: errors.ErrFilesystem, Run: resetFolder},
		{Name: StepDependencies, Label: "Installing dependencies...", Kind: errors.ErrDependencyInstall, Run: installDependencies},
		{Name: StepHooks, Label: "Setting up husky...", Kind: errors.ErrHookInstall, Run: installHooks},
		{Name: StepSpellChecker, Label: "Setting up cSpell ...", Kind: errors.ErrArtifactWrite, Run: writeSpellChecker},
		{Name: StepCommitLint, Label: "Setting up commitlint...", Kind: errors.ErrArtifactWrite, Run: writeCommitLint},
		{Name: StepLinter, Label: "Setting up eslint + airbnb ...", Kind: errors.ErrArtifactWrite, Run: writeLinter},
		{Name: StepFormatter, Label: "Setting up prettier...", Kind: errors.ErrArtifactWrite, Run: writeFormatter},
		{Name: StepLintStaged, Label: "Setting up lint-staged...", Kind: errors.ErrArtifactWrite, Run: writeLintStaged},
		{Name: StepRelease, Label: "Setting semantic release ...", Kind: errors.ErrManifest, Run: setupRelease},
	}
}

// resetFolder destroys the project folder, recreates it and initializes
// the package manifest and the repository inside it
func resetFolder(ctx context.Context, env *Env) error {
	if err := env.FS.RemoveAll(env.Dir); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "failed to remove %s", env.Dir).
			WithDetail("path", env.Dir)
	}
	if err := env.FS.MkdirAll(env.Dir, types.ModeDir); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "failed to create %s", env.Dir).
			WithDetail("path", env.Dir)
	}

	tools := env.Config.Tools
	if err := env.Exec(ctx, errors.ErrManifest, tools.NPM, "init", "-y"); err != nil {
		return err
	}
	if err := env.Exec(ctx, errors.ErrVersionControl, tools.Git, "init", "-b", env.Config.DefaultBranch); err != nil {
		return err
	}
	if err := env.Exec(ctx, errors.ErrVersionControl, tools.Git, "remote", "add", "origin", env.Config.RemoteURL); err != nil {
		return err
	}
	return env.Write(ctx, artifacts.GitIgnore())
}

func installDependencies(ctx context.Context, env *Env) error {
	args := append([]string{"install", "--save-dev"}, artifacts.DevDependencies...)
	return env.Exec(ctx, errors.ErrDependencyInstall, env.Config.Tools.NPM, args...)
}

func installHooks(ctx context.Context, env *Env) error {
	return env.Exec(ctx, errors.ErrHookInstall, env.Config.Tools.NPX, "--no-install", "husky", "install")
}

func writeSpellChecker(ctx context.Context, env *Env) error {
	a, err := artifacts.SpellChecker(env.Config)
	if err != nil {
		return errors.Wrap(err, errors.ErrArtifactWrite, "failed to render spell-checker configuration")
	}
	return env.Write(ctx, a)
}

func writeCommitLint(ctx context.Context, env *Env) error {
	return env.Write(ctx, artifacts.CommitLint(env.Config)...)
}

func writeLinter(ctx context.Context, env *Env) error {
	return env.Write(ctx, artifacts.Linter()...)
}

func writeFormatter(ctx context.Context, env *Env) error {
	files, err := artifacts.Formatter()
	if err != nil {
		return errors.Wrap(err, errors.ErrArtifactWrite, "failed to render formatter configuration")
	}
	return env.Write(ctx, files...)
}

func writeLintStaged(ctx context.Context, env *Env) error {
	files, err := artifacts.LintStaged(env.Config)
	if err != nil {
		return errors.Wrap(err, errors.ErrArtifactWrite, "failed to render lint-staged configuration")
	}
	return env.Write(ctx, files...)
}

// setupRelease writes the release configuration and registers the release
// scripts in package.json
func setupRelease(ctx context.Context, env *Env) error {
	release, err := artifacts.Release(env.Config)
	if err != nil {
		return errors.Wrap(err, errors.ErrArtifactWrite, "failed to render release configuration")
	}
	if err := env.Write(ctx, release); err != nil {
		return err
	}
	for _, s := range artifacts.ReleaseScripts {
		if err := env.Exec(ctx, errors.ErrManifest, env.Config.Tools.NPM, "pkg", "set", "scripts."+s.Name+"="+s.Command); err != nil {
			return err
		}
	}
	return nil
}
