package scaffold

import (
	"context"
	"time"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
)

// Step is one named action of a pipeline
type Step struct {
	// Name is a stable identifier used in logs, traces and error details
	Name string
	// Label is the progress line shown to the user
	Label string
	// Kind classifies failures the step function does not classify itself
	Kind errors.ErrorCode
	Run  func(ctx context.Context, env *Env) error
}

// StepResult records the outcome of one step
type StepResult struct {
	Index    int
	Name     string
	Label    string
	Duration time.Duration
	// Err is nil on success. Its code is the failure kind.
	Err error
}

// OK reports whether the step succeeded
func (r StepResult) OK() bool {
	return r.Err == nil
}

// Kind returns the failure kind, empty on success
func (r StepResult) Kind() errors.ErrorCode {
	if r.Err == nil {
		return ""
	}
	return errors.GetErrorCode(r.Err)
}

// ActionKind tells commands and file writes apart in a run plan
type ActionKind string

const (
	ActionRun   ActionKind = "run"
	ActionWrite ActionKind = "write"
)

// Action is one command run or file write, in the order it happened
type Action struct {
	Step string
	Kind ActionKind
	// Target is the command line for runs and the project-relative path
	// for writes
	Target string
}

// Result is the outcome of a pipeline run
type Result struct {
	// Dir is the target project folder
	Dir string
	// Steps holds one entry per step that ran, the failing one included
	Steps []StepResult
	// Artifacts lists the project-relative paths written, in write order
	Artifacts []string
	// Actions interleaves commands and writes in run order
	Actions []Action
}

// Failed returns the failing step, if any
func (r *Result) Failed() (StepResult, bool) {
	for _, s := range r.Steps {
		if !s.OK() {
			return s, true
		}
	}
	return StepResult{}, false
}
