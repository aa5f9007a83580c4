package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/exec"
)

// MockRunner is a mock implementation of exec.CommandRunner
type MockRunner struct {
	mock.Mock
}

// Run records the command and returns the configured error
func (m *MockRunner) Run(ctx context.Context, cmd exec.Command) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// NewMockRunner returns a runner on which every command succeeds
func NewMockRunner() *MockRunner {
	m := &MockRunner{}
	m.On("Run", mock.Anything, mock.Anything).Return(nil)
	return m
}

// NewFailingRunner returns a runner that fails the command whose rendered
// line equals line and lets every other command succeed
func NewFailingRunner(line string, err error) *MockRunner {
	m := &MockRunner{}
	m.On("Run", mock.Anything, CommandLine(line)).Return(err)
	m.On("Run", mock.Anything, mock.Anything).Return(nil)
	return m
}

// CommandLine matches an exec.Command by its rendered command line
func CommandLine(line string) interface{} {
	return mock.MatchedBy(func(c exec.Command) bool {
		return c.String() == line
	})
}

// Commands returns the commands received so far, in call order
func (m *MockRunner) Commands() []exec.Command {
	var cmds []exec.Command
	for _, call := range m.Calls {
		if call.Method != "Run" {
			continue
		}
		cmds = append(cmds, call.Arguments.Get(1).(exec.Command))
	}
	return cmds
}

// CommandLines returns the rendered command lines received so far
func (m *MockRunner) CommandLines() []string {
	cmds := m.Commands()
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return lines
}
