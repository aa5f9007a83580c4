package scaffold

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/exec"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/filesystem"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/logging"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

const tracerName = "github.com/valassis-fcalle/savi-project-bootstrap/pkg/scaffold"

// Options wires a pipeline to its collaborators. Zero values select the
// real OS filesystem, the real command runner and stdout.
type Options struct {
	FS       types.FS
	Runner   exec.CommandRunner
	Out      io.Writer
	Reporter *Reporter
}

// Pipeline runs steps in order against one project folder
type Pipeline struct {
	name     string
	env      *Env
	reporter *Reporter
	steps    []Step
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// New creates the bootstrap pipeline for cfg
func New(cfg *config.Config, opts Options) *Pipeline {
	return NewWithSteps("bootstrap", cfg, opts, BootstrapSteps())
}

// NewWithSteps creates a pipeline running the given steps
func NewWithSteps(name string, cfg *config.Config, opts Options, steps []Step) *Pipeline {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Runner == nil {
		opts.Runner = exec.NewRealRunner()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Reporter == nil {
		opts.Reporter = NewReporter(opts.Out)
	}

	logger := logging.GetLogger("scaffold." + name)
	return &Pipeline{
		name: name,
		env: &Env{
			Config: cfg,
			FS:     opts.FS,
			Runner: opts.Runner,
			Dir:    cfg.ProjectDir(),
			logger: logger,
		},
		reporter: opts.Reporter,
		steps:    steps,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// Run executes every step in order and stops at the first failure, which
// is returned with "step" and "stepIndex" details attached. The result is
// never nil.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "scaffold.run", trace.WithAttributes(
		attribute.String("pipeline", p.name),
		attribute.String("project.dir", p.env.Dir),
		attribute.String("flavor", string(p.env.Config.Flavor)),
	))
	defer span.End()

	done := logging.LogOperationStart(p.logger, p.name)
	defer done()

	p.env.written, p.env.actions = nil, nil
	result := &Result{Dir: p.env.Dir}
	for i, step := range p.steps {
		sr := p.runStep(ctx, i+1, step)
		result.Steps = append(result.Steps, sr)
		if sr.Err != nil {
			p.collect(result)
			span.RecordError(sr.Err)
			span.SetStatus(codes.Error, sr.Err.Error())
			return result, sr.Err
		}
	}
	p.collect(result)

	p.logger.Info().
		Int("steps", len(result.Steps)).
		Int("artifacts", len(result.Artifacts)).
		Str("dir", p.env.Dir).
		Msg("Pipeline completed")
	return result, nil
}

func (p *Pipeline) runStep(ctx context.Context, index int, step Step) StepResult {
	p.reporter.Step(step.Label)

	ctx, span := p.tracer.Start(ctx, "scaffold.step", trace.WithAttributes(
		attribute.Int("step.index", index),
		attribute.String("step.name", step.Name),
	))
	defer span.End()

	p.env.step = step.Name
	start := time.Now()
	err := step.Run(ctx, p.env)
	sr := StepResult{
		Index:    index,
		Name:     step.Name,
		Label:    step.Label,
		Duration: time.Since(start),
	}
	if err == nil {
		p.logger.Debug().Str("step", step.Name).Dur("duration", sr.Duration).Msg("Step completed")
		return sr
	}

	sr.Err = classify(err, step).
		WithDetail("step", step.Name).
		WithDetail("stepIndex", index)

	p.logger.Error().
		Err(err).
		Str("step", step.Name).
		Str("kind", string(sr.Kind())).
		Msg("Step failed")
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return sr
}

func (p *Pipeline) collect(result *Result) {
	result.Artifacts = append(result.Artifacts, p.env.written...)
	result.Actions = append(result.Actions, p.env.actions...)
}

// classify keeps step-assigned kinds and falls back to the step default
func classify(err error, step Step) *errors.Error {
	if e, ok := err.(*errors.Error); ok {
		return e
	}
	return errors.Wrapf(err, step.Kind, "%s failed", step.Name)
}
