package scaffold

import (
	"context"
	stderrors "errors"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/exec"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/filesystem"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// Env is what a step sees: the configuration, the filesystem, the command
// runner and the project folder every command and write is relative to.
type Env struct {
	Config *config.Config
	FS     types.FS
	Runner exec.CommandRunner
	// Dir is the target project folder
	Dir string

	logger  zerolog.Logger
	step    string
	written []string
	actions []Action
}

// Exec runs name with args inside the project folder. A failure is
// reported with the given kind.
func (e *Env) Exec(ctx context.Context, kind errors.ErrorCode, name string, args ...string) error {
	cmd := exec.Command{Name: name, Args: args, Dir: e.Dir}
	e.actions = append(e.actions, Action{Step: e.step, Kind: ActionRun, Target: cmd.String()})
	if err := e.Runner.Run(ctx, cmd); err != nil {
		return errors.Wrapf(err, kind, "%s failed", cmd.String()).
			WithDetail("command", cmd.String()).
			WithDetail("exitCode", exec.ExitCode(err))
	}
	return nil
}

// Write writes the artifacts into the project folder as one batch,
// overwriting existing files, and sets a+x on executable ones.
func (e *Env) Write(ctx context.Context, artifacts ...types.Artifact) error {
	batch := filesystem.NewBatch(e.FS, e.step)
	rel := make(map[string]string, len(artifacts))
	for _, a := range artifacts {
		path := e.Path(a.Path)
		rel[path] = a.Path
		batch.Add(path, a.Content, a.Executable)
	}

	written, err := batch.Apply(ctx)
	for _, path := range written {
		e.record(rel[path])
	}
	if err != nil {
		path := e.Dir
		var we *filesystem.WriteError
		if stderrors.As(err, &we) {
			path = we.Path
		}
		return errors.Wrapf(err, errors.ErrArtifactWrite, "failed to write %s", rel[path]).
			WithDetail("path", path)
	}

	for _, a := range artifacts {
		e.logger.Debug().
			Str("path", a.Path).
			Int("bytes", len(a.Content)).
			Bool("executable", a.Executable).
			Msg("Artifact written")
	}
	return nil
}

func (e *Env) record(path string) {
	e.written = append(e.written, path)
	e.actions = append(e.actions, Action{Step: e.step, Kind: ActionWrite, Target: path})
}

// Path resolves a project-relative slash path
func (e *Env) Path(rel string) string {
	return filepath.Join(e.Dir, filepath.FromSlash(rel))
}
